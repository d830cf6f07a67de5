package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"droscher.com/BeerReview/pkg/errs"
	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/validation"
)

type GlassServiceTestSuite struct {
	ServiceSuite
}

func (suite *GlassServiceTestSuite) TestCreate_SlugIsDerived() {
	suite.store.On("AddGlass", mock.Anything, mock.MatchedBy(func(glass model.Glass) bool {
		return glass.Name == "Tulip Glass" && glass.Slug == "Tulip-Glass"
	})).Return(func(_ context.Context, glass model.Glass) (*model.Glass, error) { return &glass, nil })

	glass, err := suite.services.Glasses.Create(context.Background(), validation.Payload{"glass_name": "Tulip Glass"})

	suite.Require().NoError(err)
	suite.Equal("Tulip-Glass", glass.Slug)
}

func (suite *GlassServiceTestSuite) TestCreate_SlugShapedNameIsUnchanged() {
	suite.store.On("AddGlass", mock.Anything, mock.Anything).
		Return(func(_ context.Context, glass model.Glass) (*model.Glass, error) { return &glass, nil })

	glass, err := suite.services.Glasses.Create(context.Background(), validation.Payload{"glass_name": "Pint"})

	suite.Require().NoError(err)
	suite.Equal("Pint", glass.Slug)
}

func (suite *GlassServiceTestSuite) TestCreate_EmptyNameIsValidationError() {
	_, err := suite.services.Glasses.Create(context.Background(), validation.Payload{"glass_name": ""})

	suite.Require().ErrorIs(err, errs.ErrValidation)
	suite.EqualError(err, "glass_name cannot be empty")
}

func (suite *GlassServiceTestSuite) TestUpdate_RenamesAndReslugs() {
	suite.expectTransaction()
	suite.store.On("GetGlassBySlug", mock.Anything, "Pint").Return(pint(), nil)
	suite.store.On("UpdateGlass", mock.Anything, mock.Anything).
		Return(func(_ context.Context, glass *model.Glass) (*model.Glass, error) { return glass, nil })

	glass, err := suite.services.Glasses.Update(context.Background(), "Pint", validation.Payload{"glass_name": "Imperial Pint"})

	suite.Require().NoError(err)
	suite.Equal("Imperial-Pint", glass.Slug)
}

func (suite *GlassServiceTestSuite) TestDelete_ReferencedGlassIsConflict() {
	suite.expectTransaction()
	suite.store.On("GetGlassBySlug", mock.Anything, "Pint").Return(pint(), nil)
	suite.store.On("DeleteGlass", mock.Anything, uint(1)).Return(errs.Conflict("glass is referenced by a beer", nil))

	err := suite.services.Glasses.Delete(context.Background(), "Pint")

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.InDelta(1, suite.rejections("glass", errs.KindConflict), 0)
}

func (suite *GlassServiceTestSuite) TestUpdate_TakenNameIsConflict() {
	suite.expectTransaction()
	suite.store.On("GetGlassBySlug", mock.Anything, "Pint").Return(pint(), nil)
	suite.store.On("UpdateGlass", mock.Anything, mock.Anything).Return(nil, errs.Conflict("glass already exists", nil))

	glass, err := suite.services.Glasses.Update(context.Background(), "Pint", validation.Payload{"glass_name": "Tulip"})

	suite.Nil(glass)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.EqualError(err, "glass already exists")
	suite.InDelta(1, suite.rejections("glass", errs.KindConflict), 0)
}
