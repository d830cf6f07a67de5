package service

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/repository"
	"droscher.com/BeerReview/pkg/validation"
)

type UserService struct {
	*core
}

func (s *UserService) List(ctx context.Context, sort string) ([]*model.User, error) {
	return s.store.ListUsers(ctx, sort)
}

func (s *UserService) Get(ctx context.Context, username string) (*model.User, error) {
	return s.store.GetUserByName(ctx, username)
}

// Ratings lists the user's ratings with their beers.
func (s *UserService) Ratings(ctx context.Context, username string, sort string) ([]*model.Rating, error) {
	user, err := s.store.GetUserByName(ctx, username)
	if err != nil {
		return nil, err
	}

	return s.store.ListRatingsForUser(ctx, user.ID, sort)
}

func (s *UserService) Create(ctx context.Context, payload validation.Payload) (*model.User, error) {
	ctx, span := s.span(ctx, "UserService.Create")
	defer span.End()

	fields, err := validation.ParseUser(payload, true)
	if err != nil {
		return nil, err
	}

	user, err := s.store.AddUser(ctx, model.User{
		Email:    *fields.Email,
		Username: *fields.Username,
		Password: *fields.Password,
	})
	if err != nil {
		return nil, s.rejected(ctx, "user", err)
	}

	s.created("user", zap.String("username", user.Username))

	return user, nil
}

// Update validates every present field before touching the stored user.
func (s *UserService) Update(ctx context.Context, username string, payload validation.Payload) (*model.User, error) {
	ctx, span := s.span(ctx, "UserService.Update")
	defer span.End()

	fields, err := validation.ParseUser(payload, false)
	if err != nil {
		return nil, err
	}

	var updated *model.User

	err = s.store.Transaction(ctx, func(store repository.Store) error {
		user, err := store.GetUserByName(ctx, username)
		if err != nil {
			return err
		}

		if fields.Email != nil {
			user.Email = *fields.Email
		}

		if fields.Username != nil {
			user.Username = *fields.Username
		}

		if fields.Password != nil {
			user.Password = *fields.Password
		}

		updated, err = store.UpdateUser(ctx, user)

		return err
	})
	if err != nil {
		return nil, s.rejected(ctx, "user", err)
	}

	return updated, nil
}

// Delete removes the user with their ratings and favorites; beers they created
// stay in the catalog without an author.
func (s *UserService) Delete(ctx context.Context, username string) error {
	ctx, span := s.span(ctx, "UserService.Delete")
	defer span.End()

	return s.store.Transaction(ctx, func(store repository.Store) error {
		user, err := store.GetUserByName(ctx, username)
		if err != nil {
			return err
		}

		if err = store.DeleteUser(ctx, user.ID); err != nil {
			return err
		}

		s.logger.Info("user deleted", zap.String("username", username))

		return nil
	})
}
