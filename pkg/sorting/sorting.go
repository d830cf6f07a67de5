// Package sorting resolves client supplied sort tokens against fixed per-entity
// whitelists. Unknown or missing tokens fall back to the entity's default ordering,
// and the primary key is always appended so listings are deterministic.
package sorting

import (
	"fmt"
	"strings"

	"gorm.io/gorm/clause"
)

const descendingPrefix = "-"

type Whitelist struct {
	defaultToken string
	tieBreak     clause.Column
	columns      map[string]clause.Column
}

type Field struct {
	Token  string
	Column clause.Column
}

func Column(table, name string) clause.Column {
	return clause.Column{Table: table, Name: name}
}

// Expression is a raw SQL ordering key such as a computed average.
func Expression(sql string) clause.Column {
	return clause.Column{Name: sql, Raw: true}
}

// NewWhitelist panics when the default token is not one of the fields so a broken
// table fails at startup rather than per request.
func NewWhitelist(defaultToken string, tieBreak clause.Column, fields ...Field) *Whitelist {
	columns := make(map[string]clause.Column, len(fields))

	for _, field := range fields {
		if strings.HasPrefix(field.Token, descendingPrefix) {
			panic(fmt.Sprintf("sort field %q must not carry the descending prefix", field.Token))
		}

		columns[field.Token] = field.Column
	}

	if _, found := columns[defaultToken]; !found {
		panic(fmt.Sprintf("default sort field %q is not in the whitelist", defaultToken))
	}

	return &Whitelist{defaultToken: defaultToken, tieBreak: tieBreak, columns: columns}
}

func (w *Whitelist) Default() string {
	return w.defaultToken
}

// Tokens returns every accepted token, ascending and descending.
func (w *Whitelist) Tokens() []string {
	tokens := make([]string, 0, len(w.columns)*2)

	for token := range w.columns {
		tokens = append(tokens, token, descendingPrefix+token)
	}

	return tokens
}

// Normalize maps an absent or unknown token to the default token.
func (w *Whitelist) Normalize(token string) string {
	field := strings.TrimPrefix(token, descendingPrefix)
	if _, found := w.columns[field]; !found || field == "" {
		return w.defaultToken
	}

	return token
}

func (w *Whitelist) Resolve(token string) []clause.OrderByColumn {
	token = w.Normalize(token)
	descending := strings.HasPrefix(token, descendingPrefix)
	column := w.columns[strings.TrimPrefix(token, descendingPrefix)]

	return []clause.OrderByColumn{
		{Column: column, Desc: descending},
		{Column: w.tieBreak},
	}
}

func (w *Whitelist) OrderBy(token string) clause.OrderBy {
	return clause.OrderBy{Columns: w.Resolve(token)}
}
