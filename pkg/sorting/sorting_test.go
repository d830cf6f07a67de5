package sorting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"

	"droscher.com/BeerReview/pkg/sorting"
)

func TestResolve_KnownTokens(t *testing.T) {
	order := sorting.Beers.Resolve("-abv")

	require.Len(t, order, 2)
	assert.Equal(t, clause.Column{Table: "beers", Name: "abv"}, order[0].Column)
	assert.True(t, order[0].Desc)
	assert.Equal(t, clause.Column{Table: "beers", Name: "id"}, order[1].Column)
	assert.False(t, order[1].Desc)

	order = sorting.Users.Resolve("email")
	assert.Equal(t, "email", order[0].Column.Name)
	assert.False(t, order[0].Desc)
}

func TestResolve_UnknownTokenMatchesDefault(t *testing.T) {
	whitelists := map[string]*sorting.Whitelist{
		"users":   sorting.Users,
		"glasses": sorting.Glasses,
		"beers":   sorting.Beers,
		"ratings": sorting.Ratings,
	}

	for name, whitelist := range whitelists {
		t.Run(name, func(t *testing.T) {
			expected := whitelist.Resolve("")

			for _, token := range []string{"bogus", "-bogus", "-", "id; DROP TABLE users", "--name"} {
				assert.Equal(t, expected, whitelist.Resolve(token), "token %q", token)
			}

			assert.Equal(t, expected, whitelist.Resolve(whitelist.Default()))
		})
	}
}

func TestResolve_RatingAverageIsRawExpression(t *testing.T) {
	order := sorting.Ratings.Resolve("-average")

	assert.True(t, order[0].Column.Raw)
	assert.True(t, order[0].Desc)
	assert.Contains(t, order[0].Column.Name, "ratings.aroma")
}

func TestTokens_IncludeDescendingVariants(t *testing.T) {
	assert.ElementsMatch(t, []string{"username", "-username", "email", "-email"}, sorting.Users.Tokens())
}

func TestNewWhitelist_PanicsOnMissingDefault(t *testing.T) {
	assert.Panics(t, func() {
		sorting.NewWhitelist("average", sorting.Column("beers", "id"),
			sorting.Field{Token: "name", Column: sorting.Column("beers", "name")})
	})

	assert.Panics(t, func() {
		sorting.NewWhitelist("-name", sorting.Column("beers", "id"),
			sorting.Field{Token: "-name", Column: sorting.Column("beers", "name")})
	})
}
