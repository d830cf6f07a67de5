package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/sorting"
)

const favoriteEntity = "favorite"

// AddFavorite is idempotent: adding an existing pair changes nothing.
func (r *Repository) AddFavorite(ctx context.Context, userID uint, beerID uint) error {
	favorite := model.Favorite{UserID: userID, BeerID: beerID}

	result := r.DB.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&favorite)

	return r.translate(result.Error, favoriteEntity)
}

// RemoveFavorite is a no-op when the pair is absent.
func (r *Repository) RemoveFavorite(ctx context.Context, userID uint, beerID uint) error {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND beer_id = ?", userID, beerID).
		Delete(&model.Favorite{})

	return r.translate(result.Error, favoriteEntity)
}

func (r *Repository) ListFavorites(ctx context.Context, userID uint, sort string) ([]*model.Beer, error) {
	var beers []*model.Beer

	result := r.beers(ctx).
		Joins("INNER JOIN favorites ON favorites.beer_id = beers.id").
		Where("favorites.user_id = ?", userID).
		Clauses(sorting.Beers.OrderBy(sort)).
		Find(&beers)
	if result.Error != nil {
		return nil, r.translate(result.Error, favoriteEntity)
	}

	return beers, nil
}
