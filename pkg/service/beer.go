package service

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/repository"
	"droscher.com/BeerReview/pkg/validation"
)

type BeerService struct {
	*core
}

func (s *BeerService) List(ctx context.Context, sort string) ([]*model.Beer, error) {
	return s.store.ListBeers(ctx, sort)
}

func (s *BeerService) Get(ctx context.Context, slug string) (*model.Beer, error) {
	return s.store.GetBeerBySlug(ctx, slug)
}

// Ratings lists the beer's ratings with their authors.
func (s *BeerService) Ratings(ctx context.Context, slug string, sort string) ([]*model.Rating, error) {
	beer, err := s.store.GetBeerBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return s.store.ListRatingsForBeer(ctx, beer.ID, sort)
}

// Create adds a beer authored by the payload's username. A user may create one
// beer per rolling beer window.
func (s *BeerService) Create(ctx context.Context, payload validation.Payload) (*model.Beer, error) {
	ctx, span := s.span(ctx, "BeerService.Create")
	defer span.End()

	username, err := validation.Reference(payload, "username")
	if err != nil {
		return nil, err
	}

	fields, err := validation.ParseBeer(payload, true)
	if err != nil {
		return nil, err
	}

	var created *model.Beer

	err = s.store.Transaction(ctx, func(store repository.Store) error {
		author, err := store.GetUserByName(ctx, username)
		if err != nil {
			return err
		}

		if err = store.LockUser(ctx, author.ID); err != nil {
			return err
		}

		if err = s.checkBeerRules(ctx, store, author.ID); err != nil {
			return err
		}

		glass, err := store.GetGlassBySlug(ctx, *fields.Glass)
		if err != nil {
			return err
		}

		beer := model.Beer{
			IBU:         *fields.IBU,
			Calories:    *fields.Calories,
			ABV:         *fields.ABV,
			Brewery:     *fields.Brewery,
			GlassID:     glass.ID,
			CreatedByID: &author.ID,
		}
		beer.SetName(*fields.Name)

		if created, err = store.AddBeer(ctx, beer); err != nil {
			return err
		}

		created.Glass = *glass

		return nil
	})
	if err != nil {
		return nil, s.rejected(ctx, "beer", err)
	}

	s.created("beer", zap.String("slug", created.Slug), zap.String("username", username))

	return created, nil
}

// Update applies the present fields only after all of them validated.
func (s *BeerService) Update(ctx context.Context, slug string, payload validation.Payload) (*model.Beer, error) {
	ctx, span := s.span(ctx, "BeerService.Update")
	defer span.End()

	fields, err := validation.ParseBeer(payload, false)
	if err != nil {
		return nil, err
	}

	var updated *model.Beer

	err = s.store.Transaction(ctx, func(store repository.Store) error {
		beer, err := store.GetBeerBySlug(ctx, slug)
		if err != nil {
			return err
		}

		if fields.Glass != nil {
			glass, err := store.GetGlassBySlug(ctx, *fields.Glass)
			if err != nil {
				return err
			}

			beer.GlassID = glass.ID
			beer.Glass = *glass
		}

		applyBeerFields(beer, fields)

		updated, err = store.UpdateBeer(ctx, beer)

		return err
	})
	if err != nil {
		return nil, s.rejected(ctx, "beer", err)
	}

	return updated, nil
}

func applyBeerFields(beer *model.Beer, fields validation.BeerFields) {
	if fields.Name != nil {
		beer.SetName(*fields.Name)
	}

	if fields.IBU != nil {
		beer.IBU = *fields.IBU
	}

	if fields.Calories != nil {
		beer.Calories = *fields.Calories
	}

	if fields.ABV != nil {
		beer.ABV = *fields.ABV
	}

	if fields.Brewery != nil {
		beer.Brewery = *fields.Brewery
	}
}

func (s *BeerService) Delete(ctx context.Context, slug string) error {
	ctx, span := s.span(ctx, "BeerService.Delete")
	defer span.End()

	return s.store.Transaction(ctx, func(store repository.Store) error {
		beer, err := store.GetBeerBySlug(ctx, slug)
		if err != nil {
			return err
		}

		return store.DeleteBeer(ctx, beer.ID)
	})
}
