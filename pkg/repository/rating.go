package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/sorting"
)

const ratingEntity = "rating"

func (r *Repository) ratings(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Joins("User").
		Joins("Beer")
}

func (r *Repository) AddRating(ctx context.Context, rating model.Rating) (*model.Rating, error) {
	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&rating); result.Error != nil {
		return nil, r.translate(result.Error, ratingEntity)
	}

	return &rating, nil
}

func (r *Repository) GetRating(ctx context.Context, userID uint, beerID uint) (*model.Rating, error) {
	var rating model.Rating

	result := r.ratings(ctx).
		Where("ratings.user_id = ? AND ratings.beer_id = ?", userID, beerID).
		First(&rating)
	if result.Error != nil {
		return nil, r.translate(result.Error, ratingEntity)
	}

	return &rating, nil
}

func (r *Repository) ListRatings(ctx context.Context, sort string) ([]*model.Rating, error) {
	return r.listRatings(r.ratings(ctx), sort)
}

func (r *Repository) ListRatingsForUser(ctx context.Context, userID uint, sort string) ([]*model.Rating, error) {
	return r.listRatings(r.ratings(ctx).Where("ratings.user_id = ?", userID), sort)
}

func (r *Repository) ListRatingsForBeer(ctx context.Context, beerID uint, sort string) ([]*model.Rating, error) {
	return r.listRatings(r.ratings(ctx).Where("ratings.beer_id = ?", beerID), sort)
}

func (r *Repository) listRatings(query *gorm.DB, sort string) ([]*model.Rating, error) {
	var ratings []*model.Rating

	if result := query.Clauses(sorting.Ratings.OrderBy(sort)).Find(&ratings); result.Error != nil {
		return nil, r.translate(result.Error, ratingEntity)
	}

	return ratings, nil
}

func (r *Repository) UpdateRating(ctx context.Context, rating *model.Rating) (*model.Rating, error) {
	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Save(rating); result.Error != nil {
		return nil, r.translate(result.Error, ratingEntity)
	}

	return rating, nil
}

func (r *Repository) DeleteRating(ctx context.Context, ratingID uint) error {
	return r.notFoundIfUnaffected(r.DB.WithContext(ctx).Delete(&model.Rating{}, ratingID), ratingEntity)
}

// GetLatestRatingByUser returns nil when the user has not rated anything yet.
func (r *Repository) GetLatestRatingByUser(ctx context.Context, userID uint) (*model.Rating, error) {
	var ratings []*model.Rating

	result := r.ratings(ctx).
		Where("ratings.user_id = ?", userID).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "ratings", Name: "created_at"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "ratings", Name: "id"}, Desc: true}).
		Limit(1).
		Find(&ratings)
	if result.Error != nil {
		return nil, r.translate(result.Error, ratingEntity)
	}

	if len(ratings) == 0 {
		return nil, nil //nolint:nilnil // no previous rating is not an error
	}

	return ratings[0], nil
}

func (r *Repository) HasRating(ctx context.Context, userID uint, beerID uint) (bool, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.Rating{}).
		Where("user_id = ? AND beer_id = ?", userID, beerID).
		Count(&count)
	if result.Error != nil {
		return false, r.translate(result.Error, ratingEntity)
	}

	return count > 0, nil
}
