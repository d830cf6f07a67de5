package service

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/repository"
	"droscher.com/BeerReview/pkg/validation"
)

type GlassService struct {
	*core
}

func (s *GlassService) List(ctx context.Context, sort string) ([]*model.Glass, error) {
	return s.store.ListGlasses(ctx, sort)
}

func (s *GlassService) Get(ctx context.Context, slug string) (*model.Glass, error) {
	return s.store.GetGlassBySlug(ctx, slug)
}

func (s *GlassService) Create(ctx context.Context, payload validation.Payload) (*model.Glass, error) {
	ctx, span := s.span(ctx, "GlassService.Create")
	defer span.End()

	fields, err := validation.ParseGlass(payload, true)
	if err != nil {
		return nil, err
	}

	var glass model.Glass

	glass.SetName(*fields.Name)

	created, err := s.store.AddGlass(ctx, glass)
	if err != nil {
		return nil, s.rejected(ctx, "glass", err)
	}

	s.created("glass", zap.String("slug", created.Slug))

	return created, nil
}

func (s *GlassService) Update(ctx context.Context, slug string, payload validation.Payload) (*model.Glass, error) {
	ctx, span := s.span(ctx, "GlassService.Update")
	defer span.End()

	fields, err := validation.ParseGlass(payload, false)
	if err != nil {
		return nil, err
	}

	var updated *model.Glass

	err = s.store.Transaction(ctx, func(store repository.Store) error {
		glass, err := store.GetGlassBySlug(ctx, slug)
		if err != nil {
			return err
		}

		if fields.Name != nil {
			glass.SetName(*fields.Name)
		}

		updated, err = store.UpdateGlass(ctx, glass)

		return err
	})
	if err != nil {
		return nil, s.rejected(ctx, "glass", err)
	}

	return updated, nil
}

// Delete fails with a Conflict while any beer is served in the glass.
func (s *GlassService) Delete(ctx context.Context, slug string) error {
	ctx, span := s.span(ctx, "GlassService.Delete")
	defer span.End()

	err := s.store.Transaction(ctx, func(store repository.Store) error {
		glass, err := store.GetGlassBySlug(ctx, slug)
		if err != nil {
			return err
		}

		return store.DeleteGlass(ctx, glass.ID)
	})

	return s.rejected(ctx, "glass", err)
}
