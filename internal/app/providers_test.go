package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/metinatakli/moviemate/api"
	"github.com/metinatakli/moviemate/internal/mocks"
	"github.com/metinatakli/moviemate/internal/provider"
	"github.com/metinatakli/moviemate/internal/provider/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func providerList(titles ...string) *provider.MovieList {
	movies := make([]provider.Movie, len(titles))
	for i, title := range titles {
		movies[i] = provider.Movie{TMDbID: int64(i + 1), Title: title}
	}

	return &provider.MovieList{
		Movies:     movies,
		Pagination: provider.NewPagination(1, 1, len(titles)),
	}
}

func TestGetTmdbPopular(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		listErr        error
		wantStatus     int
		wantErrMessage string
		wantPage       int
	}{
		{
			name:       "first page by default",
			url:        "/tmdb/movies/popular",
			wantStatus: http.StatusOK,
			wantPage:   1,
		},
		{
			name:       "explicit page",
			url:        "/tmdb/movies/popular?page=3",
			wantStatus: http.StatusOK,
			wantPage:   3,
		},
		{
			name:       "page below one",
			url:        "/tmdb/movies/popular?page=0",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "upstream unavailable",
			url:            "/tmdb/movies/popular",
			listErr:        fmt.Errorf("%w: circuit open", provider.ErrUnavailable),
			wantStatus:     http.StatusServiceUnavailable,
			wantErrMessage: ErrServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCategory tmdb.Category
			var gotPage int

			app := newTestApplication(func(a *Application) {
				a.tmdb = &mocks.MockTMDBClient{
					ListFunc: func(ctx context.Context, category tmdb.Category, page int) (*provider.MovieList, error) {
						gotCategory, gotPage = category, page
						if tt.listErr != nil {
							return nil, tt.listErr
						}
						return providerList("Dune", "Arrival"), nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodGet, tt.url, nil)

			serverWrapper(app).GetTmdbPopular(w, r)

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var response provider.MovieList
				require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

				assert.Equal(t, tmdb.Popular, gotCategory)
				assert.Equal(t, tt.wantPage, gotPage)
				assert.Len(t, response.Movies, 2)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestSearchTmdb(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "found",
			url:        "/tmdb/movies/search?query=dune",
			wantStatus: http.StatusOK,
		},
		{
			name:           "missing query",
			url:            "/tmdb/movies/search",
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: ErrMissingSearchQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.tmdb = &mocks.MockTMDBClient{
					SearchFunc: func(ctx context.Context, query string, page int) (*provider.MovieList, error) {
						assert.Equal(t, "dune", query)
						return providerList("Dune"), nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodGet, tt.url, nil)

			serverWrapper(app).SearchTmdb(w, r)

			require.Equal(t, tt.wantStatus, w.Code)

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetTmdbMovie(t *testing.T) {
	tests := []struct {
		name           string
		movieID        string
		detailsErr     error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "found",
			movieID:    "438631",
			wantStatus: http.StatusOK,
		},
		{
			name:           "unknown to tmdb",
			movieID:        "1",
			detailsErr:     provider.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:           "malformed id",
			movieID:        "dune",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: ErrInvalidMovieID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.tmdb = &mocks.MockTMDBClient{
					DetailsFunc: func(ctx context.Context, movieID int) (*provider.Movie, error) {
						if tt.detailsErr != nil {
							return nil, tt.detailsErr
						}
						return &provider.Movie{TMDbID: int64(movieID), Title: "Dune"}, nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodGet, "/tmdb/movies/"+tt.movieID, nil)
			r = withURLParams(r, map[string]string{"movieId": tt.movieID})

			serverWrapper(app).GetTmdbMovie(w, r)

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var response api.ProviderMovieResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
				assert.Equal(t, int64(438631), response.Movie.TMDbID)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetTmdbSimilar(t *testing.T) {
	var gotRelation tmdb.Relation
	var gotMovieID int

	app := newTestApplication(func(a *Application) {
		a.tmdb = &mocks.MockTMDBClient{
			RelatedFunc: func(ctx context.Context, movieID int, relation tmdb.Relation, page int) (*provider.MovieList, error) {
				gotMovieID, gotRelation = movieID, relation
				return providerList("Blade Runner 2049"), nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/tmdb/movies/438631/similar", nil)
	r = withURLParams(r, map[string]string{"movieId": "438631"})

	serverWrapper(app).GetTmdbSimilar(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 438631, gotMovieID)
	assert.Equal(t, tmdb.Similar, gotRelation)
}

func TestGetTmdbGenres(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.tmdb = &mocks.MockTMDBClient{
			GenresFunc: func(ctx context.Context) ([]provider.Genre, error) {
				return []provider.Genre{{ID: 28, Name: "Action"}}, nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/tmdb/genres", nil)

	app.GetTmdbGenres(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var response api.ProviderGenresResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, []provider.Genre{{ID: 28, Name: "Action"}}, response.Genres)
}

func TestGetOmdbMovie(t *testing.T) {
	tests := []struct {
		name           string
		imdbID         string
		detailsErr     error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "found",
			imdbID:     "tt0111161",
			wantStatus: http.StatusOK,
		},
		{
			name:           "unknown id",
			imdbID:         "tt9999999",
			detailsErr:     provider.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:           "api key rejected",
			imdbID:         "tt0111161",
			detailsErr:     fmt.Errorf("omdb: invalid api key"),
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:       "malformed id",
			imdbID:     "0111161",
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.omdb = &mocks.MockOMDbClient{
					DetailsFunc: func(ctx context.Context, imdbID string) (*provider.Movie, error) {
						if tt.detailsErr != nil {
							return nil, tt.detailsErr
						}
						return &provider.Movie{IMDbID: imdbID, Title: "The Shawshank Redemption"}, nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodGet, "/omdb/movies/"+tt.imdbID, nil)
			r = withURLParams(r, map[string]string{"imdbId": tt.imdbID})

			serverWrapper(app).GetOmdbMovie(w, r)

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var response api.ProviderMovieResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
				assert.Equal(t, "tt0111161", response.Movie.IMDbID)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetOmdbMovieByTitle(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.omdb = &mocks.MockOMDbClient{
			ByTitleFunc: func(ctx context.Context, title string) (*provider.Movie, error) {
				return nil, provider.ErrUnavailable
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/omdb/movies/title/Heat", nil)
	r = withURLParams(r, map[string]string{"title": "Heat"})

	serverWrapper(app).GetOmdbMovieByTitle(w, r)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
