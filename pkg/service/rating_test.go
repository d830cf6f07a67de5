package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"droscher.com/BeerReview/pkg/errs"
	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/service"
	"droscher.com/BeerReview/pkg/validation"
)

type RatingServiceTestSuite struct {
	ServiceSuite
}

func (suite *RatingServiceTestSuite) expectRaterLocked() {
	suite.expectTransaction()
	suite.store.On("GetBeerBySlug", mock.Anything, "Session-Ale").Return(sessionAle(), nil)
	suite.store.On("GetUserByName", mock.Anything, "bob").Return(bob(), nil)
	suite.store.On("LockUser", mock.Anything, uint(3)).Return(nil)
}

func (suite *RatingServiceTestSuite) TestCreate_AddsRating() {
	suite.expectRaterLocked()
	suite.store.On("GetLatestRatingByUser", mock.Anything, uint(3)).Return(nil, nil)
	suite.store.On("HasRating", mock.Anything, uint(3), uint(7)).Return(false, nil)
	suite.store.On("AddRating", mock.Anything, model.Rating{Aroma: 5, Appearance: 5, Taste: 5, Palate: 5, Bottle: 4, UserID: 3, BeerID: 7}).
		Return(func(_ context.Context, rating model.Rating) (*model.Rating, error) { return &rating, nil })

	rating, err := suite.services.Ratings.Create(context.Background(), ratingPayload())

	suite.Require().NoError(err)
	suite.InDelta(4.8, rating.Average(), 0.0001)
	suite.Equal("bob", rating.User.Username)
	suite.Equal("Session Ale", rating.Beer.Name)
}

func (suite *RatingServiceTestSuite) TestCreate_RatingWithinWeekIsRateLimited() {
	previous := &model.Rating{Model: model.Model{ID: 4, CreatedAt: now.Add(-6 * 24 * time.Hour)}, UserID: 3, BeerID: 8}

	suite.expectRaterLocked()
	suite.store.On("GetLatestRatingByUser", mock.Anything, uint(3)).Return(previous, nil)
	suite.store.On("HasRating", mock.Anything, uint(3), uint(7)).Return(false, nil)

	rating, err := suite.services.Ratings.Create(context.Background(), ratingPayload())

	suite.Nil(rating)
	suite.Require().ErrorIs(err, errs.ErrRateLimited)
	suite.EqualError(err, service.MessageRatingRateLimited)

	var appErr *errs.Error
	suite.Require().ErrorAs(err, &appErr)
	suite.Same(previous, appErr.Context)
	suite.store.AssertNotCalled(suite.T(), "AddRating", mock.Anything, mock.Anything)
}

func (suite *RatingServiceTestSuite) TestCreate_SecondRatingOfSameBeerIsConflict() {
	previous := &model.Rating{Model: model.Model{ID: 4, CreatedAt: now.Add(-30 * 24 * time.Hour)}, UserID: 3, BeerID: 7}

	suite.expectRaterLocked()
	suite.store.On("GetLatestRatingByUser", mock.Anything, uint(3)).Return(previous, nil)
	suite.store.On("HasRating", mock.Anything, uint(3), uint(7)).Return(true, nil)

	_, err := suite.services.Ratings.Create(context.Background(), ratingPayload())

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.EqualError(err, service.MessageAlreadyReviewed)
	suite.InDelta(1, suite.rejections("rating", errs.KindConflict), 0)
}

func (suite *RatingServiceTestSuite) TestCreate_BothRulesRunAndRateLimitWins() {
	previous := &model.Rating{Model: model.Model{ID: 4, CreatedAt: now.Add(-time.Hour)}, UserID: 3, BeerID: 7}

	suite.expectRaterLocked()
	suite.store.On("GetLatestRatingByUser", mock.Anything, uint(3)).Return(previous, nil)
	suite.store.On("HasRating", mock.Anything, uint(3), uint(7)).Return(true, nil)

	_, err := suite.services.Ratings.Create(context.Background(), ratingPayload())

	suite.ErrorIs(err, errs.ErrRateLimited)
	suite.store.AssertCalled(suite.T(), "HasRating", mock.Anything, uint(3), uint(7))
}

func (suite *RatingServiceTestSuite) TestCreate_RacingDuplicateInsertIsConflict() {
	suite.expectRaterLocked()
	suite.store.On("GetLatestRatingByUser", mock.Anything, uint(3)).Return(nil, nil)
	suite.store.On("HasRating", mock.Anything, uint(3), uint(7)).Return(false, nil)
	suite.store.On("AddRating", mock.Anything, mock.Anything).Return(nil, errs.Conflict("rating already exists", nil))

	_, err := suite.services.Ratings.Create(context.Background(), ratingPayload())

	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *RatingServiceTestSuite) TestCreate_AxisOutOfRangeIsValidationError() {
	payload := ratingPayload()
	payload["taste"] = float64(6)

	_, err := suite.services.Ratings.Create(context.Background(), payload)

	suite.Require().ErrorIs(err, errs.ErrValidation)
	suite.EqualError(err, "taste must be between 1 and 5")
}

func (suite *RatingServiceTestSuite) TestCreate_UnknownBeerIsNotFound() {
	suite.expectTransaction()
	suite.store.On("GetBeerBySlug", mock.Anything, "Session-Ale").Return(nil, errs.NotFound("beer not found"))

	_, err := suite.services.Ratings.Create(context.Background(), ratingPayload())

	suite.ErrorIs(err, errs.ErrNotFound)
}

func (suite *RatingServiceTestSuite) TestUpdate_InvalidAxisMutatesNothing() {
	_, err := suite.services.Ratings.Update(context.Background(), "bob", "Session-Ale", validation.Payload{"aroma": float64(4), "bottle": float64(0)})

	suite.Require().ErrorIs(err, errs.ErrValidation)
	suite.store.AssertNotCalled(suite.T(), "Transaction", mock.Anything, mock.Anything)
}

func (suite *RatingServiceTestSuite) TestUpdate_ChangesPresentAxes() {
	existing := &model.Rating{Model: model.Model{ID: 4}, Aroma: 5, Appearance: 5, Taste: 5, Palate: 5, Bottle: 4, UserID: 3, BeerID: 7}

	suite.expectTransaction()
	suite.store.On("GetUserByName", mock.Anything, "bob").Return(bob(), nil)
	suite.store.On("GetBeerBySlug", mock.Anything, "Session-Ale").Return(sessionAle(), nil)
	suite.store.On("GetRating", mock.Anything, uint(3), uint(7)).Return(existing, nil)
	suite.store.On("UpdateRating", mock.Anything, existing).
		Return(func(_ context.Context, rating *model.Rating) (*model.Rating, error) { return rating, nil })

	rating, err := suite.services.Ratings.Update(context.Background(), "bob", "Session-Ale", validation.Payload{"aroma": float64(1)})

	suite.Require().NoError(err)
	suite.Equal(int64(1), rating.Aroma)
	suite.Equal(int64(4), rating.Bottle)
	suite.Equal(uint(7), rating.BeerID)
}

func (suite *RatingServiceTestSuite) TestDelete_MissingRatingIsNotFound() {
	suite.expectTransaction()
	suite.store.On("GetUserByName", mock.Anything, "bob").Return(bob(), nil)
	suite.store.On("GetBeerBySlug", mock.Anything, "Session-Ale").Return(sessionAle(), nil)
	suite.store.On("GetRating", mock.Anything, uint(3), uint(7)).Return(nil, errs.NotFound("rating not found"))

	err := suite.services.Ratings.Delete(context.Background(), "bob", "Session-Ale")

	suite.ErrorIs(err, errs.ErrNotFound)
}
