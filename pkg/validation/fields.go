package validation

import "go.openly.dev/pointy"

const (
	MinimumAxis = 1
	MaximumAxis = 5
	MinimumABV  = 0.0
	MaximumABV  = 100.0
)

// UserFields, GlassFields, BeerFields and RatingFields hold validated values; a nil
// pointer means the field was absent from an edit payload.
type UserFields struct {
	Email    *string
	Username *string
	Password *string
}

type GlassFields struct {
	Name *string
}

type BeerFields struct {
	Name     *string
	IBU      *int64
	Calories *int64
	ABV      *float64
	Brewery  *string
	Glass    *string
}

type RatingFields struct {
	Aroma      *int64
	Appearance *int64
	Taste      *int64
	Palate     *int64
	Bottle     *int64
}

func (f RatingFields) Empty() bool {
	return f.Aroma == nil && f.Appearance == nil && f.Taste == nil && f.Palate == nil && f.Bottle == nil
}

type stringExtractor func(field string) (string, bool, error)

type intExtractor func(field string) (int64, bool, error)

func stringField(extract stringExtractor, field string, required bool) (*string, error) {
	value, present, err := extract(field)
	if required {
		err = require(field, present, err)
	}

	if err != nil || !present {
		return nil, err
	}

	return pointy.String(value), nil
}

func intField(extract intExtractor, field string, required bool) (*int64, error) {
	value, present, err := extract(field)
	if required {
		err = require(field, present, err)
	}

	if err != nil || !present {
		return nil, err
	}

	return pointy.Int64(value), nil
}

func (p Payload) axis(field string) (int64, bool, error) {
	return p.IntInRange(field, MinimumAxis, MaximumAxis)
}

func (p Payload) abv(field string) (float64, bool, error) {
	return p.FloatInRange(field, MinimumABV, MaximumABV)
}

func ParseUser(payload Payload, required bool) (UserFields, error) {
	var (
		fields UserFields
		err    error
	)

	if fields.Email, err = stringField(payload.Email, "email", required); err != nil {
		return UserFields{}, err
	}

	if fields.Username, err = stringField(payload.Username, "username", required); err != nil {
		return UserFields{}, err
	}

	if fields.Password, err = stringField(payload.NonEmptyString, "password", required); err != nil {
		return UserFields{}, err
	}

	return fields, nil
}

func ParseGlass(payload Payload, required bool) (GlassFields, error) {
	name, err := stringField(payload.NonEmptyString, "glass_name", required)
	if err != nil {
		return GlassFields{}, err
	}

	return GlassFields{Name: name}, nil
}

func ParseBeer(payload Payload, required bool) (BeerFields, error) {
	var (
		fields BeerFields
		err    error
	)

	if fields.Glass, err = stringField(payload.NonEmptyString, "glass_name", required); err != nil {
		return BeerFields{}, err
	}

	if fields.Name, err = stringField(payload.NonEmptyString, "name", required); err != nil {
		return BeerFields{}, err
	}

	if fields.IBU, err = intField(payload.Int, "ibu", required); err != nil {
		return BeerFields{}, err
	}

	if fields.Calories, err = intField(payload.Int, "calories", required); err != nil {
		return BeerFields{}, err
	}

	abv, present, err := payload.abv("abv")
	if required {
		err = require("abv", present, err)
	}

	if err != nil {
		return BeerFields{}, err
	}

	if present {
		fields.ABV = pointy.Float64(abv)
	}

	if fields.Brewery, err = stringField(payload.String, "brewery", required); err != nil {
		return BeerFields{}, err
	}

	return fields, nil
}

func ParseRating(payload Payload, required bool) (RatingFields, error) {
	var (
		fields RatingFields
		err    error
	)

	axes := []struct {
		name   string
		target **int64
	}{
		{"aroma", &fields.Aroma},
		{"appearance", &fields.Appearance},
		{"taste", &fields.Taste},
		{"palate", &fields.Palate},
		{"bottle", &fields.Bottle},
	}

	for _, axis := range axes {
		if *axis.target, err = intField(payload.axis, axis.name, required); err != nil {
			return RatingFields{}, err
		}
	}

	return fields, nil
}

// Reference extracts a required, non-empty string naming another entity, such as
// the author username or beer slug of a create payload.
func Reference(payload Payload, field string) (string, error) {
	value, err := stringField(payload.NonEmptyString, field, true)
	if err != nil {
		return "", err
	}

	return *value, nil
}
