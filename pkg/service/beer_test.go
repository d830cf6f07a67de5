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

type BeerServiceTestSuite struct {
	ServiceSuite
}

func (suite *BeerServiceTestSuite) expectAuthorLocked() {
	suite.expectTransaction()
	suite.store.On("GetUserByName", mock.Anything, "bob").Return(bob(), nil)
	suite.store.On("LockUser", mock.Anything, uint(3)).Return(nil)
}

func (suite *BeerServiceTestSuite) TestCreate_AddsBeerWithSlugAndAuthor() {
	suite.expectAuthorLocked()
	suite.store.On("GetLatestBeerByUser", mock.Anything, uint(3)).Return(nil, nil)
	suite.store.On("GetGlassBySlug", mock.Anything, "Pint").Return(pint(), nil)
	suite.store.On("AddBeer", mock.Anything, mock.MatchedBy(func(beer model.Beer) bool {
		return beer.Slug == "Session-Ale" && beer.GlassID == 1 && *beer.CreatedByID == 3 && beer.ABV == 5 && beer.Brewery == "Acme"
	})).Return(func(_ context.Context, beer model.Beer) (*model.Beer, error) {
		beer.ID = 9

		return &beer, nil
	})

	beer, err := suite.services.Beers.Create(context.Background(), beerPayload())

	suite.Require().NoError(err)
	suite.Equal("Session-Ale", beer.Slug)
	suite.Equal("Pint", beer.Glass.Name)
	suite.InDelta(0.0, beer.AverageRating(), 0)
}

func (suite *BeerServiceTestSuite) TestCreate_SecondBeerWithinDayIsRateLimited() {
	previous := sessionAle()
	previous.CreatedAt = now.Add(-23 * time.Hour)

	suite.expectAuthorLocked()
	suite.store.On("GetLatestBeerByUser", mock.Anything, uint(3)).Return(previous, nil)

	payload := beerPayload()
	payload["name"] = "Another Ale"

	beer, err := suite.services.Beers.Create(context.Background(), payload)

	suite.Nil(beer)
	suite.Require().ErrorIs(err, errs.ErrRateLimited)
	suite.EqualError(err, service.MessageBeerRateLimited)

	var appErr *errs.Error
	suite.Require().ErrorAs(err, &appErr)
	suite.Same(previous, appErr.Context)
	suite.InDelta(1, suite.rejections("beer", errs.KindRateLimited), 0)
	suite.store.AssertNotCalled(suite.T(), "AddBeer", mock.Anything, mock.Anything)
}

func (suite *BeerServiceTestSuite) TestCreate_BeerOlderThanWindowIsAllowed() {
	previous := sessionAle()
	previous.CreatedAt = now.Add(-24*time.Hour - time.Second)

	suite.expectAuthorLocked()
	suite.store.On("GetLatestBeerByUser", mock.Anything, uint(3)).Return(previous, nil)
	suite.store.On("GetGlassBySlug", mock.Anything, "Pint").Return(pint(), nil)
	suite.store.On("AddBeer", mock.Anything, mock.Anything).
		Return(func(_ context.Context, beer model.Beer) (*model.Beer, error) { return &beer, nil })

	payload := beerPayload()
	payload["name"] = "Another Ale"

	beer, err := suite.services.Beers.Create(context.Background(), payload)

	suite.Require().NoError(err)
	suite.Equal("Another-Ale", beer.Slug)
}

func (suite *BeerServiceTestSuite) TestCreate_MissingUsernameIsValidationError() {
	payload := beerPayload()
	delete(payload, "username")

	_, err := suite.services.Beers.Create(context.Background(), payload)

	suite.Require().ErrorIs(err, errs.ErrValidation)
	suite.EqualError(err, "bad or missing username")
}

func (suite *BeerServiceTestSuite) TestCreate_AbvOutOfRangeIsValidationError() {
	payload := beerPayload()
	payload["abv"] = float64(101)

	_, err := suite.services.Beers.Create(context.Background(), payload)

	suite.Require().ErrorIs(err, errs.ErrValidation)
	suite.store.AssertNotCalled(suite.T(), "Transaction", mock.Anything, mock.Anything)
}

func (suite *BeerServiceTestSuite) TestCreate_UnknownGlassIsNotFound() {
	suite.expectAuthorLocked()
	suite.store.On("GetLatestBeerByUser", mock.Anything, uint(3)).Return(nil, nil)
	suite.store.On("GetGlassBySlug", mock.Anything, "Pint").Return(nil, errs.NotFound("glass not found"))

	_, err := suite.services.Beers.Create(context.Background(), beerPayload())

	suite.ErrorIs(err, errs.ErrNotFound)
}

func (suite *BeerServiceTestSuite) TestUpdate_InvalidFieldMutatesNothing() {
	_, err := suite.services.Beers.Update(context.Background(), "Session-Ale", validation.Payload{"name": "Renamed", "ibu": "lots"})

	suite.Require().ErrorIs(err, errs.ErrValidation)
	suite.EqualError(err, "bad format in ibu")
	suite.store.AssertNotCalled(suite.T(), "Transaction", mock.Anything, mock.Anything)
}

func (suite *BeerServiceTestSuite) TestUpdate_ChangesGlassAndName() {
	suite.expectTransaction()
	suite.store.On("GetBeerBySlug", mock.Anything, "Session-Ale").Return(sessionAle(), nil)
	suite.store.On("GetGlassBySlug", mock.Anything, "Tulip").Return(&model.Glass{Model: model.Model{ID: 2}, Name: "Tulip", Slug: "Tulip"}, nil)
	suite.store.On("UpdateBeer", mock.Anything, mock.Anything).
		Return(func(_ context.Context, beer *model.Beer) (*model.Beer, error) { return beer, nil })

	beer, err := suite.services.Beers.Update(context.Background(), "Session-Ale", validation.Payload{"name": "Session Ale II", "glass_name": "Tulip"})

	suite.Require().NoError(err)
	suite.Equal("Session-Ale-II", beer.Slug)
	suite.Equal(uint(2), beer.GlassID)
	suite.Equal("Tulip", beer.Glass.Name)
	suite.Equal(int64(25), beer.IBU)
}

func (suite *BeerServiceTestSuite) TestDelete_RemovesBeer() {
	suite.expectTransaction()
	suite.store.On("GetBeerBySlug", mock.Anything, "Session-Ale").Return(sessionAle(), nil)
	suite.store.On("DeleteBeer", mock.Anything, uint(7)).Return(nil)

	suite.NoError(suite.services.Beers.Delete(context.Background(), "Session-Ale"))
}

func (suite *BeerServiceTestSuite) TestUpdate_TakenNameIsConflict() {
	suite.expectTransaction()
	suite.store.On("GetBeerBySlug", mock.Anything, "Session-Ale").Return(sessionAle(), nil)
	suite.store.On("UpdateBeer", mock.Anything, mock.MatchedBy(func(beer *model.Beer) bool {
		return beer.Slug == "Newcastle"
	})).Return(nil, errs.Conflict("beer already exists", nil))

	beer, err := suite.services.Beers.Update(context.Background(), "Session-Ale", validation.Payload{"name": "Newcastle"})

	suite.Nil(beer)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.EqualError(err, "beer already exists")
	suite.InDelta(1, suite.rejections("beer", errs.KindConflict), 0)
}
