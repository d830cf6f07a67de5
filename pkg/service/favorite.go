package service

import (
	"context"

	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/repository"
)

type FavoriteService struct {
	*core
}

func (s *FavoriteService) List(ctx context.Context, username string, sort string) ([]*model.Beer, error) {
	user, err := s.store.GetUserByName(ctx, username)
	if err != nil {
		return nil, err
	}

	return s.store.ListFavorites(ctx, user.ID, sort)
}

// Add is idempotent; both the user and the beer must exist.
func (s *FavoriteService) Add(ctx context.Context, username string, beerSlug string) error {
	return s.store.Transaction(ctx, func(store repository.Store) error {
		userID, beerID, err := favoritePair(ctx, store, username, beerSlug)
		if err != nil {
			return err
		}

		return store.AddFavorite(ctx, userID, beerID)
	})
}

// Remove is a no-op when the beer is not a favorite, but both must exist.
func (s *FavoriteService) Remove(ctx context.Context, username string, beerSlug string) error {
	return s.store.Transaction(ctx, func(store repository.Store) error {
		userID, beerID, err := favoritePair(ctx, store, username, beerSlug)
		if err != nil {
			return err
		}

		return store.RemoveFavorite(ctx, userID, beerID)
	})
}

func favoritePair(ctx context.Context, store repository.Store, username string, beerSlug string) (uint, uint, error) {
	user, err := store.GetUserByName(ctx, username)
	if err != nil {
		return 0, 0, err
	}

	beer, err := store.GetBeerBySlug(ctx, beerSlug)
	if err != nil {
		return 0, 0, err
	}

	return user.ID, beer.ID, nil
}
