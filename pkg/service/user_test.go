package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"droscher.com/BeerReview/pkg/errs"
	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/validation"
)

type UserServiceTestSuite struct {
	ServiceSuite
}

func (suite *UserServiceTestSuite) TestCreate_AddsUser() {
	ctx := context.Background()
	expected := model.User{Email: "bob@example.com", Username: "bob", Password: "pw"}

	suite.store.On("AddUser", mock.Anything, expected).Return(bob(), nil)

	user, err := suite.services.Users.Create(ctx, validation.Payload{"email": "bob@example.com", "username": "bob", "password": "pw"})

	suite.Require().NoError(err)
	suite.Equal(uint(3), user.ID)
	suite.Equal(1, suite.observedLogs.FilterMessage("user created").Len())
}

func (suite *UserServiceTestSuite) TestCreate_InvalidUsernamePersistsNothing() {
	user, err := suite.services.Users.Create(context.Background(), validation.Payload{"email": "bob@example.com", "username": "bob smith", "password": "pw"})

	suite.Nil(user)
	suite.Require().ErrorIs(err, errs.ErrValidation)
	suite.EqualError(err, "username contained invalid characters")
	suite.store.AssertNotCalled(suite.T(), "AddUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreate_DuplicateUsernameIsConflict() {
	suite.store.On("AddUser", mock.Anything, mock.Anything).Return(nil, errs.Conflict("user already exists", nil))

	_, err := suite.services.Users.Create(context.Background(), validation.Payload{"email": "bob@example.com", "username": "bob", "password": "pw"})

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.InDelta(1, suite.rejections("user", errs.KindConflict), 0)
}

func (suite *UserServiceTestSuite) TestUpdate_InvalidFieldMutatesNothing() {
	user, err := suite.services.Users.Update(context.Background(), "bob", validation.Payload{"email": "new@example.com", "username": ""})

	suite.Nil(user)
	suite.Require().ErrorIs(err, errs.ErrValidation)
	suite.store.AssertNotCalled(suite.T(), "Transaction", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdate_AppliesPresentFieldsOnly() {
	suite.expectTransaction()
	suite.store.On("GetUserByName", mock.Anything, "bob").Return(bob(), nil)
	suite.store.On("UpdateUser", mock.Anything, mock.MatchedBy(func(user *model.User) bool {
		return user.Email == "new@example.com" && user.Username == "bob" && user.Password == "pw"
	})).Return(func(_ context.Context, user *model.User) (*model.User, error) { return user, nil })

	user, err := suite.services.Users.Update(context.Background(), "bob", validation.Payload{"email": "new@example.com"})

	suite.Require().NoError(err)
	suite.Equal("new@example.com", user.Email)
}

func (suite *UserServiceTestSuite) TestDelete_MissingUserIsNotFound() {
	suite.expectTransaction()
	suite.store.On("GetUserByName", mock.Anything, "ghost").Return(nil, errs.NotFound("user not found"))

	err := suite.services.Users.Delete(context.Background(), "ghost")

	suite.ErrorIs(err, errs.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestDelete_CascadesThroughStore() {
	suite.expectTransaction()
	suite.store.On("GetUserByName", mock.Anything, "bob").Return(bob(), nil)
	suite.store.On("DeleteUser", mock.Anything, uint(3)).Return(nil)

	suite.NoError(suite.services.Users.Delete(context.Background(), "bob"))
}

func (suite *UserServiceTestSuite) TestRatings_ListsUsersRatings() {
	suite.store.On("GetUserByName", mock.Anything, "bob").Return(bob(), nil)
	suite.store.On("ListRatingsForUser", mock.Anything, uint(3), "-taste").Return([]*model.Rating{{Taste: 5}}, nil)

	ratings, err := suite.services.Users.Ratings(context.Background(), "bob", "-taste")

	suite.Require().NoError(err)
	suite.Len(ratings, 1)
}

func (suite *UserServiceTestSuite) TestUpdate_TakenUsernameIsConflict() {
	suite.expectTransaction()
	suite.store.On("GetUserByName", mock.Anything, "bob").Return(bob(), nil)
	suite.store.On("UpdateUser", mock.Anything, mock.MatchedBy(func(user *model.User) bool {
		return user.Username == "alice"
	})).Return(nil, errs.Conflict("user already exists", nil))

	user, err := suite.services.Users.Update(context.Background(), "bob", validation.Payload{"username": "alice"})

	suite.Nil(user)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.EqualError(err, "user already exists")
	suite.InDelta(1, suite.rejections("user", errs.KindConflict), 0)
}
