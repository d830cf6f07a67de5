package model

// BeerCandidate is a beer found by an external lookup. It is never persisted; a
// client picks one and creates a Beer from it.
type BeerCandidate struct {
	Source         string
	ExternalID     *uint64
	Name           string
	Brewery        string
	BreweryCity    string
	Style          string
	Description    string
	ImageURL       string
	ABV            *float64
	IBU            *int64
	ExternalRating *float64
}
