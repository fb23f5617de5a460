// Package seed ships the starter catalog used by cmd/seed and by the
// in-memory catalog backend.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/metinatakli/moviemate/internal/domain"
)

//go:embed movies.json
var moviesJSON []byte

type movieRecord struct {
	Title      string   `json:"title"`
	Poster     string   `json:"poster"`
	Backdrop   string   `json:"backdrop"`
	Overview   string   `json:"overview"`
	Rating     float64  `json:"rating"`
	Year       int      `json:"year"`
	Genre      []string `json:"genre"`
	Duration   string   `json:"duration"`
	Director   string   `json:"director"`
	Cast       []string `json:"cast"`
	Language   string   `json:"language"`
	Country    string   `json:"country"`
	Featured   bool     `json:"featured"`
	Popularity float64  `json:"popularity"`
	Tags       []string `json:"tags"`
	Trailer    string   `json:"trailer"`
	IMDbID     string   `json:"imdbId"`
}

// MovieStore is the part of a movie repository seeding needs.
type MovieStore interface {
	Reset(ctx context.Context) error
	Create(ctx context.Context, movie *domain.Movie) error
}

// Movies decodes the embedded catalog. Ids are left unset.
func Movies() ([]*domain.Movie, error) {
	var records []movieRecord

	err := json.Unmarshal(moviesJSON, &records)
	if err != nil {
		return nil, fmt.Errorf("decode seed movies: %w", err)
	}

	movies := make([]*domain.Movie, len(records))
	for i, r := range records {
		movies[i] = &domain.Movie{
			Title:      r.Title,
			Overview:   r.Overview,
			Poster:     r.Poster,
			Backdrop:   r.Backdrop,
			Rating:     r.Rating,
			Year:       r.Year,
			Genres:     domain.ToGenres(r.Genre),
			Duration:   r.Duration,
			Director:   r.Director,
			Cast:       r.Cast,
			Language:   orDefault(r.Language, domain.DefaultMovieLang),
			Country:    orDefault(r.Country, domain.DefaultMovieCountry),
			Featured:   r.Featured,
			Popularity: r.Popularity,
			Tags:       r.Tags,
			Trailer:    r.Trailer,
			IMDbID:     r.IMDbID,
		}
	}

	return movies, nil
}

// Load replaces whatever repo holds with the embedded catalog and returns how
// many movies were created. Running it twice leaves a single copy.
func Load(ctx context.Context, repo MovieStore) (int, error) {
	movies, err := Movies()
	if err != nil {
		return 0, err
	}

	err = repo.Reset(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset movies: %w", err)
	}

	for i, m := range movies {
		err := repo.Create(ctx, m)
		if err != nil {
			return i, fmt.Errorf("create %q: %w", m.Title, err)
		}
	}

	return len(movies), nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
