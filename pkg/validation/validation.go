// Package validation turns untyped, already-decoded request payloads into typed,
// range-checked values. Every extractor reports whether the field was present so
// callers can tell "absent" (leave unchanged) from "present but invalid".
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"droscher.com/BeerReview/pkg/errs"
	"droscher.com/BeerReview/pkg/slug"
)

type Payload map[string]any

func (p Payload) Has(field string) bool {
	value, found := p[field]

	return found && value != nil
}

func (p Payload) String(field string) (string, bool, error) {
	if !p.Has(field) {
		return "", false, nil
	}

	switch value := p[field].(type) {
	case string:
		return value, true, nil
	case json.Number:
		return value.String(), true, nil
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true, nil
	case int:
		return strconv.Itoa(value), true, nil
	case bool:
		return strconv.FormatBool(value), true, nil
	default:
		return "", true, errs.Validation(field, fmt.Sprintf("bad format in %s", field))
	}
}

func (p Payload) NonEmptyString(field string) (string, bool, error) {
	value, present, err := p.String(field)
	if err != nil || !present {
		return value, present, err
	}

	if value == "" {
		return "", true, errs.Validation(field, field+" cannot be empty")
	}

	return value, true, nil
}

func (p Payload) Email(field string) (string, bool, error) {
	value, present, err := p.NonEmptyString(field)
	if err != nil || !present {
		return value, present, err
	}

	if !strings.Contains(value, "@") {
		return "", true, errs.Validation(field, field+" looks invalid")
	}

	return value, true, nil
}

func (p Payload) Username(field string) (string, bool, error) {
	value, present, err := p.NonEmptyString(field)
	if err != nil || !present {
		return value, present, err
	}

	if !slug.IsSlug(value) {
		return "", true, errs.Validation(field, field+" contained invalid characters")
	}

	return value, true, nil
}

func (p Payload) Int(field string) (int64, bool, error) {
	if !p.Has(field) {
		return 0, false, nil
	}

	invalid := errs.Validation(field, fmt.Sprintf("bad format in %s", field))

	switch value := p[field].(type) {
	case float64:
		parsed, ok := integral(value)
		if !ok {
			return 0, true, invalid
		}

		return parsed, true, nil
	case int:
		return int64(value), true, nil
	case int64:
		return value, true, nil
	case json.Number:
		if parsed, err := value.Int64(); err == nil {
			return parsed, true, nil
		}

		// 5.0 and 1e1 arrive as json.Number too.
		asFloat, err := value.Float64()
		if err != nil {
			return 0, true, invalid
		}

		parsed, ok := integral(asFloat)
		if !ok {
			return 0, true, invalid
		}

		return parsed, true, nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return 0, true, invalid
		}

		return parsed, true, nil
	default:
		return 0, true, invalid
	}
}

// integral reports whether value is a whole number representable as int64.
// float64(math.MaxInt64) rounds up to 2^63, which already overflows.
func integral(value float64) (int64, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) ||
		value >= math.MaxInt64 || value < math.MinInt64 {
		return 0, false
	}

	return int64(value), true
}

func (p Payload) Float(field string) (float64, bool, error) {
	if !p.Has(field) {
		return 0, false, nil
	}

	invalid := errs.Validation(field, fmt.Sprintf("bad format in %s", field))

	var (
		parsed float64
		err    error
	)

	switch value := p[field].(type) {
	case float64:
		parsed = value
	case int:
		parsed = float64(value)
	case int64:
		parsed = float64(value)
	case json.Number:
		parsed, err = value.Float64()
	case string:
		parsed, err = strconv.ParseFloat(strings.TrimSpace(value), 64)
	default:
		return 0, true, invalid
	}

	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, true, invalid
	}

	return parsed, true, nil
}

func (p Payload) IntInRange(field string, minimum, maximum int64) (int64, bool, error) {
	value, present, err := p.Int(field)
	if err != nil || !present {
		return value, present, err
	}

	if value < minimum || value > maximum {
		return 0, true, errs.Validation(field, fmt.Sprintf("%s must be between %d and %d", field, minimum, maximum))
	}

	return value, true, nil
}

func (p Payload) FloatInRange(field string, minimum, maximum float64) (float64, bool, error) {
	value, present, err := p.Float(field)
	if err != nil || !present {
		return value, present, err
	}

	if value < minimum || value > maximum {
		return 0, true, errs.Validation(field, fmt.Sprintf("%s must be between %g and %g", field, minimum, maximum))
	}

	return value, true, nil
}

func require(field string, present bool, err error) error {
	if err != nil {
		return err
	}

	if !present {
		return errs.Validation(field, "bad or missing "+field)
	}

	return nil
}
