package domain

import (
	"context"
	"slices"
	"time"
)

const (
	MinMovieYear        = 1900
	MaxMovieYearsAhead  = 5
	MinRatingValue      = 0.0
	MaxRatingValue      = 10.0
	DefaultMovieCountry = "USA"
	DefaultMovieLang    = "English"
)

type Movie struct {
	ID         int64
	Title      string
	Overview   string
	Poster     string
	Backdrop   string
	Rating     float64
	Year       int
	Genres     []Genre
	Duration   string
	Director   string
	Cast       []string
	Language   string
	Country    string
	Featured   bool
	Popularity float64
	Tags       []string
	Trailer    string
	IMDbID     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Version    int
}

// Clone returns a deep copy so callers can never alias a stored record.
func (m *Movie) Clone() *Movie {
	if m == nil {
		return nil
	}

	c := *m
	c.Genres = slices.Clone(m.Genres)
	c.Cast = slices.Clone(m.Cast)
	c.Tags = slices.Clone(m.Tags)

	return &c
}

func (m *Movie) HasAnyGenre(genres []Genre) bool {
	for _, g := range m.Genres {
		if slices.Contains(genres, g) {
			return true
		}
	}

	return false
}

// MaxMovieYear is the latest release year a catalog entry may carry.
func MaxMovieYear(now time.Time) int {
	return now.Year() + MaxMovieYearsAhead
}

// MovieReader is the read capability the catalog query service depends on.
// Implementations may push any subset of the criteria down to their store,
// but must never drop a record that satisfies all of them.
type MovieReader interface {
	FetchAll(ctx context.Context, criteria MovieCriteria) ([]*Movie, error)
}

type MovieRepository interface {
	MovieReader
	GetById(ctx context.Context, id int64) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int64) error
}
