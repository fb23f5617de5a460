package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/metinatakli/moviemate/internal/domain"
)

type sortKey struct {
	field     domain.SortField
	direction domain.SortDirection
}

// byRatingThenYear is the ordering used by search, featured and
// recommendation listings.
var byRatingThenYear = []sortKey{
	{field: domain.SortByRating, direction: domain.SortDesc},
	{field: domain.SortByYear, direction: domain.SortDesc},
}

// sortMovies orders movies by keys and always breaks remaining ties by id
// ascending, so the result does not depend on the input order.
func sortMovies(movies []*domain.Movie, keys ...sortKey) {
	slices.SortFunc(movies, func(a, b *domain.Movie) int {
		for _, k := range keys {
			c := compareField(a, b, k.field)
			if k.direction == domain.SortDesc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}

		return cmp.Compare(a.ID, b.ID)
	})
}

func compareField(a, b *domain.Movie, field domain.SortField) int {
	switch field {
	case domain.SortByTitle:
		return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case domain.SortByYear:
		return cmp.Compare(a.Year, b.Year)
	case domain.SortByRating:
		return cmp.Compare(a.Rating, b.Rating)
	case domain.SortByPopularity:
		return cmp.Compare(a.Popularity, b.Popularity)
	default:
		return cmp.Compare(a.ID, b.ID)
	}
}
