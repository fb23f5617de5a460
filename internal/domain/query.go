package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

type SortField string

const (
	SortByID         SortField = "id"
	SortByTitle      SortField = "title"
	SortByYear       SortField = "year"
	SortByRating     SortField = "rating"
	SortByPopularity SortField = "popularity"
)

var SortFields = []SortField{SortByID, SortByTitle, SortByYear, SortByRating, SortByPopularity}

func (f SortField) Valid() bool {
	return slices.Contains(SortFields, f)
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (d SortDirection) Valid() bool {
	return d == SortAsc || d == SortDesc
}

const (
	DefaultPage          = 1
	DefaultLimit         = 12
	DefaultSortField     = SortByYear
	DefaultSortDirection = SortDesc
)

// MovieCriteria holds the filters of a catalog query. Nil pointers and empty
// values mean "not filtered".
type MovieCriteria struct {
	Genres    []Genre
	Year      *int
	MinRating *decimal.Decimal
	Featured  *bool
	Search    string
}

// SearchTerm returns the normalized free-text token, or "" when the search is
// absent or blank.
func (c MovieCriteria) SearchTerm() string {
	return strings.ToLower(strings.TrimSpace(c.Search))
}

type MovieQuery struct {
	MovieCriteria
	Page          int
	Limit         int
	SortField     SortField
	SortDirection SortDirection
}

// NewMovieQuery returns a query with the catalog defaults applied.
func NewMovieQuery() MovieQuery {
	return MovieQuery{
		Page:          DefaultPage,
		Limit:         DefaultLimit,
		SortField:     DefaultSortField,
		SortDirection: DefaultSortDirection,
	}
}

func (q MovieQuery) Validate() error {
	if q.Page < 1 {
		return fmt.Errorf("%w: page must be at least 1, got %d", ErrInvalidArgument, q.Page)
	}
	if q.Limit < 1 {
		return fmt.Errorf("%w: limit must be at least 1, got %d", ErrInvalidArgument, q.Limit)
	}
	if !q.SortField.Valid() {
		return fmt.Errorf("%w: unsupported sort field %q", ErrInvalidArgument, q.SortField)
	}
	if !q.SortDirection.Valid() {
		return fmt.Errorf("%w: unsupported sort direction %q", ErrInvalidArgument, q.SortDirection)
	}

	return nil
}
