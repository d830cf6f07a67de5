package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BeerReview/pkg/errs"
	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/sorting"
)

const glassEntity = "glass"

func (r *Repository) AddGlass(ctx context.Context, glass model.Glass) (*model.Glass, error) {
	if result := r.DB.WithContext(ctx).Create(&glass); result.Error != nil {
		return nil, r.translate(result.Error, glassEntity)
	}

	return &glass, nil
}

func (r *Repository) GetGlassBySlug(ctx context.Context, slug string) (*model.Glass, error) {
	var glass model.Glass

	result := r.DB.WithContext(ctx).Where("slug = ?", slug).First(&glass)
	if result.Error != nil {
		return nil, r.translate(result.Error, glassEntity)
	}

	return &glass, nil
}

func (r *Repository) ListGlasses(ctx context.Context, sort string) ([]*model.Glass, error) {
	var glasses []*model.Glass

	result := r.DB.WithContext(ctx).Clauses(sorting.Glasses.OrderBy(sort)).Find(&glasses)
	if result.Error != nil {
		return nil, r.translate(result.Error, glassEntity)
	}

	return glasses, nil
}

func (r *Repository) UpdateGlass(ctx context.Context, glass *model.Glass) (*model.Glass, error) {
	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Save(glass); result.Error != nil {
		return nil, r.translate(result.Error, glassEntity)
	}

	return glass, nil
}

func (r *Repository) CountBeersForGlass(ctx context.Context, glassID uint) (int64, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.Beer{}).Where("glass_id = ?", glassID).Count(&count)
	if result.Error != nil {
		return 0, r.translate(result.Error, "beer")
	}

	return count, nil
}

// DeleteGlass refuses to delete a glass that beers still reference.
func (r *Repository) DeleteGlass(ctx context.Context, glassID uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		store := &Repository{DB: tx, Logger: r.Logger}

		count, err := store.CountBeersForGlass(ctx, glassID)
		if err != nil {
			return err
		}

		if count > 0 {
			return errs.Conflict("glass is referenced by a beer", map[string]int64{"beers": count})
		}

		return r.notFoundIfUnaffected(tx.Delete(&model.Glass{}, glassID), glassEntity)
	})

	return r.translate(err, glassEntity)
}
