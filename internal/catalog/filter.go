package catalog

import (
	"strings"

	"github.com/metinatakli/moviemate/internal/domain"
	"github.com/shopspring/decimal"
)

// Matches reports whether m satisfies every filter in c. Filters combine with
// AND; genres match on intersection and the search token matches when it is
// found in any text field.
func Matches(m *domain.Movie, c domain.MovieCriteria) bool {
	if len(c.Genres) > 0 && !m.HasAnyGenre(c.Genres) {
		return false
	}

	if c.Year != nil && m.Year != *c.Year {
		return false
	}

	if c.MinRating != nil && decimal.NewFromFloat(m.Rating).LessThan(*c.MinRating) {
		return false
	}

	if c.Featured != nil && m.Featured != *c.Featured {
		return false
	}

	if term := c.SearchTerm(); term != "" && !matchesSearch(m, term) {
		return false
	}

	return true
}

// matchesSearch expects term to be lower-cased already.
func matchesSearch(m *domain.Movie, term string) bool {
	if containsFold(m.Title, term) || containsFold(m.Overview, term) {
		return true
	}

	for _, g := range m.Genres {
		if containsFold(string(g), term) {
			return true
		}
	}

	for _, name := range m.Cast {
		if containsFold(name, term) {
			return true
		}
	}

	return false
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

func filterMovies(movies []*domain.Movie, c domain.MovieCriteria) []*domain.Movie {
	matched := make([]*domain.Movie, 0, len(movies))
	for _, m := range movies {
		if m != nil && Matches(m, c) {
			matched = append(matched, m)
		}
	}

	return matched
}
