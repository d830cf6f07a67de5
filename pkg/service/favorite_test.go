package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"droscher.com/BeerReview/pkg/errs"
	"droscher.com/BeerReview/pkg/model"
)

type FavoriteServiceTestSuite struct {
	ServiceSuite
}

func (suite *FavoriteServiceTestSuite) TestAdd_IsIdempotent() {
	suite.expectTransaction()
	suite.store.On("GetUserByName", mock.Anything, "bob").Return(bob(), nil)
	suite.store.On("GetBeerBySlug", mock.Anything, "Session-Ale").Return(sessionAle(), nil)
	suite.store.On("AddFavorite", mock.Anything, uint(3), uint(7)).Return(nil).Twice()

	suite.NoError(suite.services.Favorites.Add(context.Background(), "bob", "Session-Ale"))
	suite.NoError(suite.services.Favorites.Add(context.Background(), "bob", "Session-Ale"))
}

func (suite *FavoriteServiceTestSuite) TestAdd_UnknownBeerIsNotFound() {
	suite.expectTransaction()
	suite.store.On("GetUserByName", mock.Anything, "bob").Return(bob(), nil)
	suite.store.On("GetBeerBySlug", mock.Anything, "Nope").Return(nil, errs.NotFound("beer not found"))

	suite.ErrorIs(suite.services.Favorites.Add(context.Background(), "bob", "Nope"), errs.ErrNotFound)
}

func (suite *FavoriteServiceTestSuite) TestRemove_AbsentFavoriteIsNoop() {
	suite.expectTransaction()
	suite.store.On("GetUserByName", mock.Anything, "bob").Return(bob(), nil)
	suite.store.On("GetBeerBySlug", mock.Anything, "Session-Ale").Return(sessionAle(), nil)
	suite.store.On("RemoveFavorite", mock.Anything, uint(3), uint(7)).Return(nil)

	suite.NoError(suite.services.Favorites.Remove(context.Background(), "bob", "Session-Ale"))
}

func (suite *FavoriteServiceTestSuite) TestList_UsesBeerSort() {
	suite.store.On("GetUserByName", mock.Anything, "bob").Return(bob(), nil)
	suite.store.On("ListFavorites", mock.Anything, uint(3), "-abv").Return([]*model.Beer{sessionAle()}, nil)

	beers, err := suite.services.Favorites.List(context.Background(), "bob", "-abv")

	suite.Require().NoError(err)
	suite.Len(beers, 1)
}
