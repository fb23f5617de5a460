package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/moviemate/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readerFunc func(ctx context.Context, c domain.MovieCriteria) ([]*domain.Movie, error)

func (f readerFunc) FetchAll(ctx context.Context, c domain.MovieCriteria) ([]*domain.Movie, error) {
	return f(ctx, c)
}

// snapshotReader serves a fixed set of movies, shuffled on every call to
// mimic a store without a stable iteration order.
func snapshotReader(movies []*domain.Movie, seed int64) domain.MovieReader {
	rng := rand.New(rand.NewSource(seed))

	return readerFunc(func(ctx context.Context, c domain.MovieCriteria) ([]*domain.Movie, error) {
		out := make([]*domain.Movie, len(movies))
		copy(out, movies)
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out, nil
	})
}

func sameYearMovies(n, year int) []*domain.Movie {
	movies := make([]*domain.Movie, n)
	for i := range movies {
		movies[i] = &domain.Movie{
			ID:       int64(i + 1),
			Title:    fmt.Sprintf("Movie %02d", i+1),
			Overview: "An overview",
			Rating:   7,
			Year:     year,
			Genres:   []domain.Genre{domain.GenreDrama},
		}
	}

	return movies
}

func ids(movies []*domain.Movie) []int64 {
	out := make([]int64, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}

	return out
}

func ptr[T any](v T) *T {
	return &v
}

func TestListMoviesPagination(t *testing.T) {
	svc := NewService(snapshotReader(sameYearMovies(25, 2024), 1))

	tests := []struct {
		name       string
		page       int
		limit      int
		wantLen    int
		wantPages  int
		wantNext   bool
		wantPrev   bool
		wantFirst  int64
		wantNoItem bool
	}{
		{name: "first page of three", page: 1, limit: 12, wantLen: 12, wantPages: 3, wantNext: true, wantFirst: 1},
		{name: "middle page", page: 2, limit: 12, wantLen: 12, wantPages: 3, wantNext: true, wantPrev: true, wantFirst: 13},
		{name: "last partial page", page: 3, limit: 12, wantLen: 1, wantPages: 3, wantPrev: true, wantFirst: 25},
		{name: "page beyond the end", page: 10, limit: 12, wantLen: 0, wantPages: 3, wantPrev: true, wantNoItem: true},
		{name: "single page holds everything", page: 1, limit: 100, wantLen: 25, wantPages: 1, wantFirst: 1},
		{name: "limit of one", page: 25, limit: 1, wantLen: 1, wantPages: 25, wantPrev: true, wantFirst: 25},
		{name: "largest page number", page: math.MaxInt, limit: 12, wantLen: 0, wantPages: 3, wantPrev: true, wantNoItem: true},
		{name: "largest limit", page: 1, limit: math.MaxInt, wantLen: 25, wantPages: 1, wantFirst: 1},
		{name: "largest page and limit", page: math.MaxInt, limit: math.MaxInt, wantLen: 0, wantPages: 1, wantPrev: true, wantNoItem: true},
		{name: "page just past the end", page: 4, limit: 12, wantLen: 0, wantPages: 3, wantPrev: true, wantNoItem: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := domain.NewMovieQuery()
			q.Page = tt.page
			q.Limit = tt.limit

			got, err := svc.ListMovies(context.Background(), q)
			require.NoError(t, err)

			assert.Len(t, got.Items, tt.wantLen)
			assert.Equal(t, tt.page, got.Pagination.CurrentPage)
			assert.Equal(t, tt.wantPages, got.Pagination.TotalPages)
			assert.Equal(t, 25, got.Pagination.TotalItems)
			assert.Equal(t, tt.wantNext, got.Pagination.HasNext)
			assert.Equal(t, tt.wantPrev, got.Pagination.HasPrev)

			if tt.wantNoItem {
				assert.NotNil(t, got.Items)
				return
			}
			// all movies share the year, so the id tie-break decides the order
			assert.Equal(t, tt.wantFirst, got.Items[0].ID)
		})
	}
}

func TestListMoviesPageSizeProperty(t *testing.T) {
	for _, total := range []int{0, 1, 11, 12, 13, 37} {
		svc := NewService(snapshotReader(sameYearMovies(total, 2020), int64(total)))

		for _, limit := range []int{1, 5, 12, 1 << 40, math.MaxInt} {
			for _, page := range []int{1, 2, 3, 4, 5, 6, 1 << 40, math.MaxInt} {
				q := domain.NewMovieQuery()
				q.Page = page
				q.Limit = limit

				got, err := svc.ListMovies(context.Background(), q)
				require.NoError(t, err)

				wantPages := total / limit
				if total%limit != 0 {
					wantPages++
				}

				want := 0
				switch {
				case page < wantPages:
					want = limit
				case page == wantPages:
					want = total - (page-1)*limit
				}

				if len(got.Items) != want {
					t.Errorf("total=%d limit=%d page=%d: len(items) = %d, want %d", total, limit, page, len(got.Items), want)
				}
				if got.Pagination.TotalPages != wantPages {
					t.Errorf("total=%d limit=%d: totalPages = %d, want %d", total, limit, got.Pagination.TotalPages, wantPages)
				}
				if got.Pagination.HasNext != (page < wantPages) {
					t.Errorf("total=%d limit=%d page=%d: hasNext = %v", total, limit, page, got.Pagination.HasNext)
				}
				if got.Pagination.HasPrev != (page > 1) {
					t.Errorf("page=%d: hasPrev = %v", page, got.Pagination.HasPrev)
				}
			}
		}
	}
}

func TestListMoviesFilters(t *testing.T) {
	catalog := []*domain.Movie{
		{ID: 1, Title: "Quantum Horizon", Overview: "A physicist discovers parallel dimensions.", Rating: 8.7, Year: 2024,
			Genres: []domain.Genre{domain.GenreSciFi, domain.GenreThriller}, Cast: []string{"Emma Stone"}, Featured: true},
		{ID: 2, Title: "Tokyo Nights", Overview: "Love in Tokyo blossoms between two strangers.", Rating: 8.0, Year: 2024,
			Genres: []domain.Genre{domain.GenreRomance, domain.GenreDrama}, Cast: []string{"Dev Patel"}, Featured: true},
		{ID: 3, Title: "The Haunted Manor", Overview: "A family moves into a house with a past.", Rating: 7.3, Year: 2023,
			Genres: []domain.Genre{domain.GenreHorror, domain.GenreMystery}, Cast: []string{"Toni Collette"}},
		{ID: 4, Title: "Shadow's Edge", Overview: "An assassin protects a witness.", Rating: 7.9, Year: 2024,
			Genres: []domain.Genre{domain.GenreAction, domain.GenreThriller}, Cast: []string{"Tom Hardy"}, Featured: true},
		{ID: 5, Title: "Frontier", Overview: "Settlers cross the plains.", Rating: 6.5, Year: 1962,
			Genres: []domain.Genre{domain.GenreWestern}, Cast: []string{"John Wayne"}},
	}

	tests := []struct {
		name    string
		modify  func(*domain.MovieQuery)
		wantIDs []int64
	}{
		{
			name:    "no filters returns everything ordered by year desc",
			modify:  func(q *domain.MovieQuery) {},
			wantIDs: []int64{1, 2, 4, 3, 5},
		},
		{
			name:    "search matches overview case-insensitively",
			modify:  func(q *domain.MovieQuery) { q.Search = "love" },
			wantIDs: []int64{2},
		},
		{
			name:    "search matches cast",
			modify:  func(q *domain.MovieQuery) { q.Search = "HARDY" },
			wantIDs: []int64{4},
		},
		{
			name:    "search matches genre text",
			modify:  func(q *domain.MovieQuery) { q.Search = "sci" },
			wantIDs: []int64{1},
		},
		{
			name:    "search matches title",
			modify:  func(q *domain.MovieQuery) { q.Search = "manor" },
			wantIDs: []int64{3},
		},
		{
			name:    "blank search is ignored",
			modify:  func(q *domain.MovieQuery) { q.Search = "   " },
			wantIDs: []int64{1, 2, 4, 3, 5},
		},
		{
			name:    "genre intersects record genres",
			modify:  func(q *domain.MovieQuery) { q.Genres = []domain.Genre{domain.GenreHorror} },
			wantIDs: []int64{3},
		},
		{
			name:    "genre not on record excludes it",
			modify:  func(q *domain.MovieQuery) { q.Genres = []domain.Genre{domain.GenreWestern} },
			wantIDs: []int64{5},
		},
		{
			name:    "several genres are or-ed",
			modify:  func(q *domain.MovieQuery) { q.Genres = []domain.Genre{domain.GenreHorror, domain.GenreRomance} },
			wantIDs: []int64{2, 3},
		},
		{
			name:    "unknown genre matches nothing",
			modify:  func(q *domain.MovieQuery) { q.Genres = []domain.Genre{"Noir"} },
			wantIDs: []int64{},
		},
		{
			name:    "unknown genre next to a known one",
			modify:  func(q *domain.MovieQuery) { q.Genres = []domain.Genre{"Noir", domain.GenreWestern} },
			wantIDs: []int64{5},
		},
		{
			name: "min rating is inclusive",
			modify: func(q *domain.MovieQuery) {
				q.MinRating = ptr(decimal.RequireFromString("8.0"))
			},
			wantIDs: []int64{1, 2},
		},
		{
			name:    "exact year",
			modify:  func(q *domain.MovieQuery) { q.Year = ptr(2023) },
			wantIDs: []int64{3},
		},
		{
			name:    "featured only",
			modify:  func(q *domain.MovieQuery) { q.Featured = ptr(true) },
			wantIDs: []int64{1, 2, 4},
		},
		{
			name:    "not featured",
			modify:  func(q *domain.MovieQuery) { q.Featured = ptr(false) },
			wantIDs: []int64{3, 5},
		},
		{
			name: "filters combine with and",
			modify: func(q *domain.MovieQuery) {
				q.Genres = []domain.Genre{domain.GenreThriller}
				q.Featured = ptr(true)
				q.MinRating = ptr(decimal.RequireFromString("8"))
			},
			wantIDs: []int64{1},
		},
		{
			name: "sort by title ascending ignores case",
			modify: func(q *domain.MovieQuery) {
				q.SortField = domain.SortByTitle
				q.SortDirection = domain.SortAsc
			},
			wantIDs: []int64{5, 1, 4, 3, 2},
		},
		{
			name: "sort by rating descending",
			modify: func(q *domain.MovieQuery) {
				q.SortField = domain.SortByRating
			},
			wantIDs: []int64{1, 2, 4, 3, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(snapshotReader(catalog, 7))

			q := domain.NewMovieQuery()
			tt.modify(&q)

			got, err := svc.ListMovies(context.Background(), q)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.wantIDs, ids(got.Items)); diff != "" {
				t.Errorf("ListMovies() ids mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.wantIDs), got.Pagination.TotalItems)
		})
	}
}

func TestListMoviesRatingBoundary(t *testing.T) {
	svc := NewService(snapshotReader([]*domain.Movie{
		{ID: 1, Title: "Almost", Rating: 7.9, Year: 2020, Genres: []domain.Genre{domain.GenreDrama}},
		{ID: 2, Title: "Exactly", Rating: 8.0, Year: 2020, Genres: []domain.Genre{domain.GenreDrama}},
	}, 3))

	q := domain.NewMovieQuery()
	q.MinRating = ptr(decimal.NewFromFloat(8.0))

	got, err := svc.ListMovies(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, []int64{2}, ids(got.Items))
}

func TestListMoviesStableOrdering(t *testing.T) {
	movies := sameYearMovies(30, 2024)
	for i, m := range movies {
		m.Rating = float64(i % 3)
	}

	q := domain.NewMovieQuery()
	q.SortField = domain.SortByRating
	q.Limit = 30

	var first []int64
	for seed := int64(1); seed <= 5; seed++ {
		svc := NewService(snapshotReader(movies, seed))

		got, err := svc.ListMovies(context.Background(), q)
		require.NoError(t, err)

		if first == nil {
			first = ids(got.Items)
			continue
		}
		if diff := cmp.Diff(first, ids(got.Items)); diff != "" {
			t.Fatalf("ordering changed with iteration order (-first +seed %d):\n%s", seed, diff)
		}
	}
}

func TestListMoviesFilterIsIdempotent(t *testing.T) {
	movies := []*domain.Movie{
		{ID: 1, Title: "A", Rating: 9, Year: 2001, Genres: []domain.Genre{domain.GenreWar}},
		{ID: 2, Title: "B", Rating: 5, Year: 2001, Genres: []domain.Genre{domain.GenreWar, domain.GenreHistory}},
		{ID: 3, Title: "C", Rating: 9, Year: 2002, Genres: []domain.Genre{domain.GenreFamily}},
	}
	criteria := domain.MovieCriteria{Genres: []domain.Genre{domain.GenreWar}, MinRating: ptr(decimal.NewFromInt(6))}

	once := filterMovies(movies, criteria)
	twice := filterMovies(once, criteria)

	assert.Equal(t, ids(once), ids(twice))
	assert.Equal(t, []int64{1}, ids(once))
}

func TestListMoviesDoesNotExposeStoredRecords(t *testing.T) {
	stored := sameYearMovies(2, 2024)
	svc := NewService(snapshotReader(stored, 1))

	got, err := svc.ListMovies(context.Background(), domain.NewMovieQuery())
	require.NoError(t, err)

	got.Items[0].Title = "changed"
	got.Items[0].Genres[0] = domain.GenreWar

	for _, m := range stored {
		assert.NotEqual(t, "changed", m.Title)
		assert.Equal(t, domain.GenreDrama, m.Genres[0])
	}
}

func TestListMoviesInvalidArguments(t *testing.T) {
	called := false
	svc := NewService(readerFunc(func(ctx context.Context, c domain.MovieCriteria) ([]*domain.Movie, error) {
		called = true
		return nil, nil
	}))

	tests := []struct {
		name   string
		modify func(*domain.MovieQuery)
	}{
		{name: "zero limit", modify: func(q *domain.MovieQuery) { q.Limit = 0 }},
		{name: "negative limit", modify: func(q *domain.MovieQuery) { q.Limit = -1 }},
		{name: "zero page", modify: func(q *domain.MovieQuery) { q.Page = 0 }},
		{name: "unknown sort field", modify: func(q *domain.MovieQuery) { q.SortField = "budget" }},
		{name: "unknown direction", modify: func(q *domain.MovieQuery) { q.SortDirection = "sideways" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := domain.NewMovieQuery()
			tt.modify(&q)

			_, err := svc.ListMovies(context.Background(), q)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}

	assert.False(t, called, "reader must not be queried for invalid requests")
}

func TestListMoviesReaderFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewService(readerFunc(func(ctx context.Context, c domain.MovieCriteria) ([]*domain.Movie, error) {
		return nil, storeErr
	}))

	_, err := svc.ListMovies(context.Background(), domain.NewMovieQuery())

	assert.ErrorIs(t, err, storeErr)
	assert.ErrorIs(t, err, domain.ErrDependencyUnavailable)
}

func TestListMoviesPassesCriteriaToReader(t *testing.T) {
	var got domain.MovieCriteria
	svc := NewService(readerFunc(func(ctx context.Context, c domain.MovieCriteria) ([]*domain.Movie, error) {
		got = c
		return nil, nil
	}))

	q := domain.NewMovieQuery()
	q.Genres = []domain.Genre{domain.GenreComedy}
	q.Year = ptr(1999)
	q.Search = "club"

	_, err := svc.ListMovies(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, q.MovieCriteria, got)
}

func TestSearch(t *testing.T) {
	movies := []*domain.Movie{
		{ID: 1, Title: "Love Actually", Rating: 7.6, Year: 2003, Genres: []domain.Genre{domain.GenreRomance}},
		{ID: 2, Title: "Lovely Bones", Rating: 6.7, Year: 2009, Genres: []domain.Genre{domain.GenreDrama}},
		{ID: 3, Title: "Crazy, Stupid", Overview: "love", Rating: 7.6, Year: 2011, Genres: []domain.Genre{domain.GenreComedy}},
		{ID: 4, Title: "Heat", Rating: 8.3, Year: 1995, Genres: []domain.Genre{domain.GenreCrime}},
	}
	svc := NewService(snapshotReader(movies, 9))

	t.Run("orders by rating then year", func(t *testing.T) {
		got, err := svc.Search(context.Background(), "LOVE", 1, 12)
		require.NoError(t, err)

		assert.Equal(t, []int64{3, 1, 2}, ids(got.Items))
		assert.Equal(t, 3, got.Pagination.TotalItems)
	})

	t.Run("paginates", func(t *testing.T) {
		got, err := svc.Search(context.Background(), "love", 2, 2)
		require.NoError(t, err)

		assert.Equal(t, []int64{2}, ids(got.Items))
		assert.True(t, got.Pagination.HasPrev)
		assert.False(t, got.Pagination.HasNext)
	})

	t.Run("blank term", func(t *testing.T) {
		_, err := svc.Search(context.Background(), " ", 1, 12)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("invalid limit", func(t *testing.T) {
		_, err := svc.Search(context.Background(), "love", 1, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestFeatured(t *testing.T) {
	movies := []*domain.Movie{
		{ID: 1, Rating: 8.7, Year: 2024, Featured: true},
		{ID: 2, Rating: 9.1, Year: 2020, Featured: false},
		{ID: 3, Rating: 8.7, Year: 2025, Featured: true},
		{ID: 4, Rating: 7.0, Year: 2024, Featured: true},
	}
	svc := NewService(snapshotReader(movies, 4))

	got, err := svc.Featured(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, ids(got))

	got, err = svc.Featured(context.Background(), DefaultFeaturedLimit)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 4}, ids(got))

	_, err = svc.Featured(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestGenres(t *testing.T) {
	svc := NewService(snapshotReader([]*domain.Movie{
		{ID: 1, Genres: []domain.Genre{domain.GenreThriller, domain.GenreSciFi}},
		{ID: 2, Genres: []domain.Genre{domain.GenreAction, domain.GenreThriller}},
	}, 2))

	got, err := svc.Genres(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Genre{domain.GenreAction, domain.GenreSciFi, domain.GenreThriller}, got)

	empty := NewService(snapshotReader(nil, 1))
	got, err = empty.Genres(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestRecommend(t *testing.T) {
	movies := []*domain.Movie{
		{ID: 1, Rating: 9.0, Year: 2020, Genres: []domain.Genre{domain.GenreDrama}, IMDbID: "tt001"},
		{ID: 2, Rating: 8.0, Year: 2021, Genres: []domain.Genre{domain.GenreDrama, domain.GenreWar}},
		{ID: 3, Rating: 9.5, Year: 2019, Genres: []domain.Genre{domain.GenreComedy}},
		{ID: 4, Rating: 7.0, Year: 2022, Genres: []domain.Genre{domain.GenreWar}, IMDbID: "tt004"},
	}
	svc := NewService(snapshotReader(movies, 5))

	tests := []struct {
		name    string
		req     RecommendRequest
		wantIDs []int64
		wantErr error
	}{
		{
			name:    "favorite genres narrow the catalog",
			req:     RecommendRequest{FavoriteGenres: []domain.Genre{domain.GenreWar}, Limit: 10},
			wantIDs: []int64{2, 4},
		},
		{
			name:    "favorites are excluded",
			req:     RecommendRequest{FavoriteGenres: []domain.Genre{domain.GenreDrama}, ExcludeIMDbIDs: []string{"tt001"}, Limit: 10},
			wantIDs: []int64{2},
		},
		{
			name:    "no preferences means every genre",
			req:     RecommendRequest{Limit: 3},
			wantIDs: []int64{3, 1, 2},
		},
		{
			name:    "invalid limit",
			req:     RecommendRequest{Limit: 0},
			wantErr: domain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Recommend(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}
