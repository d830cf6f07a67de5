package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/BeerReview/pkg/errs"
	"droscher.com/BeerReview/pkg/model"
)

type Store interface { //nolint:interfacebloat // the store owns every collection of the service
	UserStore
	GlassStore
	BeerStore
	RatingStore
	FavoriteStore

	// Transaction runs fn against a store bound to one database transaction;
	// any error returned by fn rolls the transaction back.
	Transaction(ctx context.Context, fn func(store Store) error) error
}

type UserStore interface {
	AddUser(ctx context.Context, user model.User) (*model.User, error)
	GetUserByName(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context, sort string) ([]*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, userID uint) error
	LockUser(ctx context.Context, userID uint) error
}

type GlassStore interface {
	AddGlass(ctx context.Context, glass model.Glass) (*model.Glass, error)
	GetGlassBySlug(ctx context.Context, slug string) (*model.Glass, error)
	ListGlasses(ctx context.Context, sort string) ([]*model.Glass, error)
	UpdateGlass(ctx context.Context, glass *model.Glass) (*model.Glass, error)
	DeleteGlass(ctx context.Context, glassID uint) error
	CountBeersForGlass(ctx context.Context, glassID uint) (int64, error)
}

type BeerStore interface {
	AddBeer(ctx context.Context, beer model.Beer) (*model.Beer, error)
	GetBeerBySlug(ctx context.Context, slug string) (*model.Beer, error)
	ListBeers(ctx context.Context, sort string) ([]*model.Beer, error)
	UpdateBeer(ctx context.Context, beer *model.Beer) (*model.Beer, error)
	DeleteBeer(ctx context.Context, beerID uint) error
	GetLatestBeerByUser(ctx context.Context, userID uint) (*model.Beer, error)
}

type RatingStore interface {
	AddRating(ctx context.Context, rating model.Rating) (*model.Rating, error)
	GetRating(ctx context.Context, userID uint, beerID uint) (*model.Rating, error)
	ListRatings(ctx context.Context, sort string) ([]*model.Rating, error)
	ListRatingsForUser(ctx context.Context, userID uint, sort string) ([]*model.Rating, error)
	ListRatingsForBeer(ctx context.Context, beerID uint, sort string) ([]*model.Rating, error)
	UpdateRating(ctx context.Context, rating *model.Rating) (*model.Rating, error)
	DeleteRating(ctx context.Context, ratingID uint) error
	GetLatestRatingByUser(ctx context.Context, userID uint) (*model.Rating, error)
	HasRating(ctx context.Context, userID uint, beerID uint) (bool, error)
}

type FavoriteStore interface {
	AddFavorite(ctx context.Context, userID uint, beerID uint) error
	RemoveFavorite(ctx context.Context, userID uint, beerID uint) error
	ListFavorites(ctx context.Context, userID uint, sort string) ([]*model.Beer, error)
}

var _ Store = (*Repository)(nil)

func (r *Repository) Transaction(ctx context.Context, fn func(store Store) error) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{DB: tx, Logger: r.Logger})
	})

	return r.translate(err, "transaction")
}

// translate maps driver and gorm errors onto the service error taxonomy.
func (r *Repository) translate(err error, entity string) error {
	var appErr *errs.Error

	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NotFound("%s not found", entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.Conflict(entity+" already exists", nil)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.Conflict(entity+" is referenced by another record", nil)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return errs.Validation(entity, entity+" violates a range constraint")
	default:
		r.Logger.Error("database error", zap.String("entity", entity), zap.Error(err))

		return errs.Internal(err)
	}
}

func (r *Repository) notFoundIfUnaffected(result *gorm.DB, entity string) error {
	if result.Error != nil {
		return r.translate(result.Error, entity)
	}

	if result.RowsAffected == 0 {
		return errs.NotFound("%s not found", entity)
	}

	return nil
}
