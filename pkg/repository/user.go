package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/sorting"
)

const userEntity = "user"

func (r *Repository) AddUser(ctx context.Context, user model.User) (*model.User, error) {
	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&user); result.Error != nil {
		return nil, r.translate(result.Error, userEntity)
	}

	return &user, nil
}

func (r *Repository) GetUserByName(ctx context.Context, username string) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		return nil, r.translate(result.Error, userEntity)
	}

	return &user, nil
}

func (r *Repository) ListUsers(ctx context.Context, sort string) ([]*model.User, error) {
	var users []*model.User

	result := r.DB.WithContext(ctx).Clauses(sorting.Users.OrderBy(sort)).Find(&users)
	if result.Error != nil {
		return nil, r.translate(result.Error, userEntity)
	}

	return users, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Save(user); result.Error != nil {
		return nil, r.translate(result.Error, userEntity)
	}

	return user, nil
}

// DeleteUser removes the user's ratings and favorites and orphans the beers they
// created before deleting the user itself.
func (r *Repository) DeleteUser(ctx context.Context, userID uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("user_id = ?", userID).Delete(&model.Rating{}); result.Error != nil {
			return r.translate(result.Error, "rating")
		}

		if result := tx.Where("user_id = ?", userID).Delete(&model.Favorite{}); result.Error != nil {
			return r.translate(result.Error, "favorite")
		}

		result := tx.Model(&model.Beer{}).Where("created_by_id = ?", userID).UpdateColumn("created_by_id", nil)
		if result.Error != nil {
			return r.translate(result.Error, "beer")
		}

		return r.notFoundIfUnaffected(tx.Delete(&model.User{}, userID), userEntity)
	})

	return r.translate(err, userEntity)
}

// LockUser takes a row lock on the user for the rest of the transaction so that
// rate limited writes by the same user are serialized.
func (r *Repository) LockUser(ctx context.Context, userID uint) error {
	var user model.User

	result := r.DB.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", userID).
		Take(&user)

	return r.translate(result.Error, userEntity)
}
