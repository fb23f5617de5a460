package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/metinatakli/moviemate/internal/domain"
	"github.com/metinatakli/moviemate/internal/mocks"
	"github.com/metinatakli/moviemate/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovies(t *testing.T) {
	movies, err := Movies()
	require.NoError(t, err)
	require.Len(t, movies, 12)

	featured := 0
	for _, m := range movies {
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Genres, m.Title)
		for _, g := range m.Genres {
			assert.True(t, g.Valid(), "%s has unknown genre %q", m.Title, g)
		}
		assert.Equal(t, domain.DefaultMovieLang, m.Language)
		assert.Equal(t, domain.DefaultMovieCountry, m.Country)

		if m.Featured {
			featured++
		}
	}

	assert.Positive(t, featured)
	assert.Equal(t, "Quantum Horizon", movies[0].Title)
}

func TestLoad(t *testing.T) {
	t.Run("creates every movie", func(t *testing.T) {
		repo := repository.NewMemoryMovieRepository()

		n, err := Load(context.Background(), repo)
		require.NoError(t, err)
		assert.Equal(t, 12, n)

		all, err := repo.FetchAll(context.Background(), domain.MovieCriteria{})
		require.NoError(t, err)
		assert.Len(t, all, 12)
	})

	t.Run("seeding twice keeps one copy", func(t *testing.T) {
		repo := repository.NewMemoryMovieRepository(&domain.Movie{Title: "Leftover"})

		_, err := Load(context.Background(), repo)
		require.NoError(t, err)

		n, err := Load(context.Background(), repo)
		require.NoError(t, err)
		assert.Equal(t, 12, n)

		all, err := repo.FetchAll(context.Background(), domain.MovieCriteria{})
		require.NoError(t, err)
		require.Len(t, all, 12)

		ids := make(map[int64]string, len(all))
		for _, m := range all {
			assert.NotEqual(t, "Leftover", m.Title)
			ids[m.ID] = m.Title
		}
		for id := int64(1); id <= 12; id++ {
			assert.Contains(t, ids, id)
		}
		assert.Equal(t, "Quantum Horizon", ids[1])
	})

	t.Run("reset failure stops before inserting", func(t *testing.T) {
		created := 0
		repo := &mocks.MockMovieRepo{
			ResetFunc: func(ctx context.Context) error {
				return errors.New("truncate failed")
			},
			CreateFunc: func(ctx context.Context, movie *domain.Movie) error {
				created++
				return nil
			},
		}

		n, err := Load(context.Background(), repo)
		assert.ErrorContains(t, err, "truncate failed")
		assert.Zero(t, n)
		assert.Zero(t, created)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		calls := 0
		repo := &mocks.MockMovieRepo{
			CreateFunc: func(ctx context.Context, movie *domain.Movie) error {
				calls++
				if calls == 3 {
					return errors.New("insert failed")
				}
				return nil
			},
		}

		n, err := Load(context.Background(), repo)
		assert.ErrorContains(t, err, "insert failed")
		assert.Equal(t, 2, n)
	})
}
