// Package api holds the JSON documents served by the HTTP transport.
package api

type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Ratings  []Rating `json:"ratings,omitempty"`
}

type Glass struct {
	Name string `json:"glass_name"`
	Slug string `json:"slug"`
}

type Beer struct {
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	IBU           int64   `json:"ibu"`
	Calories      int64   `json:"calories"`
	ABV           float64 `json:"abv"`
	Brewery       string  `json:"brewery"`
	GlassName     string  `json:"glass_name"`
	AverageRating float64 `json:"average_rating"`
}

type Rating struct {
	Aroma      int64   `json:"aroma"`
	Appearance int64   `json:"appearance"`
	Taste      int64   `json:"taste"`
	Palate     int64   `json:"palate"`
	Bottle     int64   `json:"bottle"`
	Average    float64 `json:"average"`
	Beer       string  `json:"beer,omitempty"`
	User       string  `json:"user,omitempty"`
}

type BeerCandidate struct {
	Source         string   `json:"source"`
	ExternalID     *uint64  `json:"external_id,omitempty"`
	Name           string   `json:"name"`
	Brewery        string   `json:"brewery"`
	BreweryCity    string   `json:"brewery_city,omitempty"`
	Style          string   `json:"style,omitempty"`
	Description    string   `json:"description,omitempty"`
	ImageURL       string   `json:"image_url,omitempty"`
	ABV            *float64 `json:"abv,omitempty"`
	IBU            *int64   `json:"ibu,omitempty"`
	ExternalRating *float64 `json:"external_rating,omitempty"`
}

type UserList struct {
	Users []User `json:"users"`
}

type GlassList struct {
	Glasses []Glass `json:"glasses"`
}

type BeerList struct {
	Beers []Beer `json:"beers"`
}

type RatingList struct {
	Ratings []Rating `json:"ratings"`
}

type RatingDocument struct {
	Rating Rating `json:"rating"`
}

type CandidateList struct {
	Beers []BeerCandidate `json:"beers"`
}
