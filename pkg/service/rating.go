package service

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/repository"
	"droscher.com/BeerReview/pkg/validation"
)

type RatingService struct {
	*core
}

func (s *RatingService) List(ctx context.Context, sort string) ([]*model.Rating, error) {
	return s.store.ListRatings(ctx, sort)
}

// Get finds the rating a user gave a beer.
func (s *RatingService) Get(ctx context.Context, username string, beerSlug string) (*model.Rating, error) {
	return findRating(ctx, s.store, username, beerSlug)
}

// Create adds the payload user's rating of the payload beer, subject to the weekly
// rate limit and the one rating per beer rule.
func (s *RatingService) Create(ctx context.Context, payload validation.Payload) (*model.Rating, error) {
	ctx, span := s.span(ctx, "RatingService.Create")
	defer span.End()

	beerSlug, err := validation.Reference(payload, "beer")
	if err != nil {
		return nil, err
	}

	username, err := validation.Reference(payload, "username")
	if err != nil {
		return nil, err
	}

	fields, err := validation.ParseRating(payload, true)
	if err != nil {
		return nil, err
	}

	var created *model.Rating

	err = s.store.Transaction(ctx, func(store repository.Store) error {
		beer, err := store.GetBeerBySlug(ctx, beerSlug)
		if err != nil {
			return err
		}

		user, err := store.GetUserByName(ctx, username)
		if err != nil {
			return err
		}

		if err = store.LockUser(ctx, user.ID); err != nil {
			return err
		}

		if err = s.checkRatingRules(ctx, store, user.ID, beer.ID); err != nil {
			return err
		}

		created, err = store.AddRating(ctx, model.Rating{
			Aroma:      *fields.Aroma,
			Appearance: *fields.Appearance,
			Taste:      *fields.Taste,
			Palate:     *fields.Palate,
			Bottle:     *fields.Bottle,
			UserID:     user.ID,
			BeerID:     beer.ID,
		})
		if err != nil {
			return err
		}

		created.User = *user
		created.Beer = *beer

		return nil
	})
	if err != nil {
		return nil, s.rejected(ctx, "rating", err)
	}

	s.created("rating", zap.String("username", username), zap.String("beer", beerSlug))

	return created, nil
}

// Update changes the axes only; the rating's user and beer never change.
func (s *RatingService) Update(ctx context.Context, username string, beerSlug string, payload validation.Payload) (*model.Rating, error) {
	ctx, span := s.span(ctx, "RatingService.Update")
	defer span.End()

	fields, err := validation.ParseRating(payload, false)
	if err != nil {
		return nil, err
	}

	var updated *model.Rating

	err = s.store.Transaction(ctx, func(store repository.Store) error {
		rating, err := findRating(ctx, store, username, beerSlug)
		if err != nil {
			return err
		}

		if fields.Empty() {
			updated = rating

			return nil
		}

		applyRatingFields(rating, fields)

		updated, err = store.UpdateRating(ctx, rating)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func applyRatingFields(rating *model.Rating, fields validation.RatingFields) {
	axes := []struct {
		value  *int64
		target *int64
	}{
		{fields.Aroma, &rating.Aroma},
		{fields.Appearance, &rating.Appearance},
		{fields.Taste, &rating.Taste},
		{fields.Palate, &rating.Palate},
		{fields.Bottle, &rating.Bottle},
	}

	for _, axis := range axes {
		if axis.value != nil {
			*axis.target = *axis.value
		}
	}
}

func (s *RatingService) Delete(ctx context.Context, username string, beerSlug string) error {
	ctx, span := s.span(ctx, "RatingService.Delete")
	defer span.End()

	return s.store.Transaction(ctx, func(store repository.Store) error {
		rating, err := findRating(ctx, store, username, beerSlug)
		if err != nil {
			return err
		}

		return store.DeleteRating(ctx, rating.ID)
	})
}

func findRating(ctx context.Context, store repository.Store, username string, beerSlug string) (*model.Rating, error) {
	user, err := store.GetUserByName(ctx, username)
	if err != nil {
		return nil, err
	}

	beer, err := store.GetBeerBySlug(ctx, beerSlug)
	if err != nil {
		return nil, err
	}

	return store.GetRating(ctx, user.ID, beer.ID)
}
