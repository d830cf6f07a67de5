package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"droscher.com/BeerReview/pkg/errs"
)

func TestIs_MatchesKind(t *testing.T) {
	err := errs.NotFound("beer %q not found", "ipa")

	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.NotErrorIs(t, err, errs.ErrConflict)
	assert.EqualError(t, err, `beer "ipa" not found`)
}

func TestIs_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("creating rating: %w", errs.Conflict("user already reviewed this beer", nil))

	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
}

func TestKindOf_DefaultsToInternal(t *testing.T) {
	assert.Equal(t, errs.KindInternal, errs.KindOf(errors.New("boom")))
}

func TestInternal_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, errs.ErrInternal)
	assert.Equal(t, "internal error", err.Error())
}

func TestValidation_CarriesField(t *testing.T) {
	err := errs.Validation("abv", "abv must be between 0 and 100")

	assert.Equal(t, "abv", err.Field)
	assert.Equal(t, errs.KindValidation, err.Kind)
	assert.ErrorIs(t, err, errs.ErrValidation)
}
