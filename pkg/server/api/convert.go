package api

import (
	"droscher.com/BeerReview/pkg/model"
)

// RatingOptions selects the related names embedded in a rating document.
type RatingOptions struct {
	IncludeBeer bool
	IncludeUser bool
}

func UserFromModel(user *model.User, ratings []*model.Rating) User {
	apiUser := User{
		ID:       user.UUID.String(),
		Email:    user.Email,
		Username: user.Username,
		Password: user.Password,
	}

	if ratings != nil {
		apiUser.Ratings = RatingsFromModel(ratings, RatingOptions{IncludeBeer: true})
	}

	return apiUser
}

func UsersFromModel(users []*model.User) UserList {
	apiUsers := make([]User, 0, len(users))

	for _, user := range users {
		apiUsers = append(apiUsers, UserFromModel(user, nil))
	}

	return UserList{Users: apiUsers}
}

func GlassFromModel(glass *model.Glass) Glass {
	return Glass{Name: glass.Name, Slug: glass.Slug}
}

func GlassesFromModel(glasses []*model.Glass) GlassList {
	apiGlasses := make([]Glass, 0, len(glasses))

	for _, glass := range glasses {
		apiGlasses = append(apiGlasses, GlassFromModel(glass))
	}

	return GlassList{Glasses: apiGlasses}
}

func BeerFromModel(beer *model.Beer) Beer {
	return Beer{
		Name:          beer.Name,
		Slug:          beer.Slug,
		IBU:           beer.IBU,
		Calories:      beer.Calories,
		ABV:           beer.ABV,
		Brewery:       beer.Brewery,
		GlassName:     beer.Glass.Name,
		AverageRating: beer.AverageRating(),
	}
}

func BeersFromModel(beers []*model.Beer) BeerList {
	apiBeers := make([]Beer, 0, len(beers))

	for _, beer := range beers {
		apiBeers = append(apiBeers, BeerFromModel(beer))
	}

	return BeerList{Beers: apiBeers}
}

func RatingFromModel(rating *model.Rating, options RatingOptions) Rating {
	apiRating := Rating{
		Aroma:      rating.Aroma,
		Appearance: rating.Appearance,
		Taste:      rating.Taste,
		Palate:     rating.Palate,
		Bottle:     rating.Bottle,
		Average:    rating.Average(),
	}

	if options.IncludeBeer {
		apiRating.Beer = rating.Beer.Name
	}

	if options.IncludeUser {
		apiRating.User = rating.User.Username
	}

	return apiRating
}

func RatingsFromModel(ratings []*model.Rating, options RatingOptions) []Rating {
	apiRatings := make([]Rating, 0, len(ratings))

	for _, rating := range ratings {
		apiRatings = append(apiRatings, RatingFromModel(rating, options))
	}

	return apiRatings
}

func CandidatesFromModel(candidates []model.BeerCandidate) CandidateList {
	apiCandidates := make([]BeerCandidate, 0, len(candidates))

	for _, candidate := range candidates {
		apiCandidates = append(apiCandidates, BeerCandidate{
			Source:         candidate.Source,
			ExternalID:     candidate.ExternalID,
			Name:           candidate.Name,
			Brewery:        candidate.Brewery,
			BreweryCity:    candidate.BreweryCity,
			Style:          candidate.Style,
			Description:    candidate.Description,
			ImageURL:       candidate.ImageURL,
			ABV:            candidate.ABV,
			IBU:            candidate.IBU,
			ExternalRating: candidate.ExternalRating,
		})
	}

	return CandidateList{Beers: apiCandidates}
}
