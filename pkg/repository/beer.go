package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/sorting"
)

const beerEntity = "beer"

func (r *Repository) beers(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Joins("Glass").
		Preload("Ratings")
}

func (r *Repository) AddBeer(ctx context.Context, beer model.Beer) (*model.Beer, error) {
	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&beer); result.Error != nil {
		return nil, r.translate(result.Error, beerEntity)
	}

	return &beer, nil
}

func (r *Repository) GetBeerBySlug(ctx context.Context, slug string) (*model.Beer, error) {
	var beer model.Beer

	result := r.beers(ctx).Where("beers.slug = ?", slug).First(&beer)
	if result.Error != nil {
		return nil, r.translate(result.Error, beerEntity)
	}

	return &beer, nil
}

func (r *Repository) ListBeers(ctx context.Context, sort string) ([]*model.Beer, error) {
	var beers []*model.Beer

	result := r.beers(ctx).Clauses(sorting.Beers.OrderBy(sort)).Find(&beers)
	if result.Error != nil {
		return nil, r.translate(result.Error, beerEntity)
	}

	return beers, nil
}

func (r *Repository) UpdateBeer(ctx context.Context, beer *model.Beer) (*model.Beer, error) {
	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Save(beer); result.Error != nil {
		return nil, r.translate(result.Error, beerEntity)
	}

	return beer, nil
}

// DeleteBeer removes the beer together with its ratings and favorite entries.
func (r *Repository) DeleteBeer(ctx context.Context, beerID uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("beer_id = ?", beerID).Delete(&model.Rating{}); result.Error != nil {
			return r.translate(result.Error, "rating")
		}

		if result := tx.Where("beer_id = ?", beerID).Delete(&model.Favorite{}); result.Error != nil {
			return r.translate(result.Error, "favorite")
		}

		return r.notFoundIfUnaffected(tx.Delete(&model.Beer{}, beerID), beerEntity)
	})

	return r.translate(err, beerEntity)
}

// GetLatestBeerByUser returns nil when the user has not created any beer.
func (r *Repository) GetLatestBeerByUser(ctx context.Context, userID uint) (*model.Beer, error) {
	var beers []*model.Beer

	result := r.beers(ctx).
		Where("beers.created_by_id = ?", userID).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "beers", Name: "created_at"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "beers", Name: "id"}, Desc: true}).
		Limit(1).
		Find(&beers)
	if result.Error != nil {
		return nil, r.translate(result.Error, beerEntity)
	}

	if len(beers) == 0 {
		return nil, nil //nolint:nilnil // no previous beer is not an error
	}

	return beers[0], nil
}
