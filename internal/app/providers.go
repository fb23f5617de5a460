package app

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/moviemate/api"
	"github.com/metinatakli/moviemate/internal/provider"
	"github.com/metinatakli/moviemate/internal/provider/tmdb"
	appvalidator "github.com/metinatakli/moviemate/internal/validator"
)

type listFetcher func(ctx context.Context, page int) (*provider.MovieList, error)

func (app *Application) GetTmdbPopular(w http.ResponseWriter, r *http.Request, params api.GetTmdbPopularParams) {
	app.serveProviderList(w, r, params, params.Page, app.tmdbCategory(tmdb.Popular))
}

func (app *Application) GetTmdbTopRated(w http.ResponseWriter, r *http.Request, params api.GetTmdbTopRatedParams) {
	app.serveProviderList(w, r, params, params.Page, app.tmdbCategory(tmdb.TopRated))
}

func (app *Application) GetTmdbNowPlaying(w http.ResponseWriter, r *http.Request, params api.GetTmdbNowPlayingParams) {
	app.serveProviderList(w, r, params, params.Page, app.tmdbCategory(tmdb.NowPlaying))
}

func (app *Application) GetTmdbUpcoming(w http.ResponseWriter, r *http.Request, params api.GetTmdbUpcomingParams) {
	app.serveProviderList(w, r, params, params.Page, app.tmdbCategory(tmdb.Upcoming))
}

func (app *Application) GetTmdbTrending(w http.ResponseWriter, r *http.Request, params api.GetTmdbTrendingParams) {
	window := tmdb.TimeWindow(valueOr(params.TimeWindow, string(tmdb.Week)))

	app.serveProviderList(w, r, params, params.Page, func(ctx context.Context, page int) (*provider.MovieList, error) {
		return app.tmdb.Trending(ctx, window, page)
	})
}

func (app *Application) SearchTmdb(w http.ResponseWriter, r *http.Request, params api.SearchTmdbParams) {
	query, ok := app.readSearchQuery(w, r, params.Query)
	if !ok {
		return
	}

	app.serveProviderList(w, r, params, params.Page, func(ctx context.Context, page int) (*provider.MovieList, error) {
		return app.tmdb.Search(ctx, query, page)
	})
}

func (app *Application) GetTmdbByGenre(w http.ResponseWriter, r *http.Request, genreId int, params api.GetTmdbByGenreParams) {
	if genreId < 1 {
		app.badRequestResponse(w, r, errors.New("invalid genreId parameter"))
		return
	}

	app.serveProviderList(w, r, params, params.Page, func(ctx context.Context, page int) (*provider.MovieList, error) {
		return app.tmdb.ByGenre(ctx, genreId, page)
	})
}

func (app *Application) GetTmdbMovie(w http.ResponseWriter, r *http.Request, movieId api.TmdbMovieId) {
	if movieId < 1 {
		app.badRequestResponse(w, r, errors.New(ErrInvalidMovieID))
		return
	}

	movie, err := app.tmdb.Details(r.Context(), movieId)
	app.writeProviderMovie(w, r, movie, err)
}

func (app *Application) GetTmdbRecommendations(w http.ResponseWriter, r *http.Request, movieId api.TmdbMovieId, params api.GetTmdbRecommendationsParams) {
	app.serveRelated(w, r, movieId, tmdb.Recommendations, params, params.Page)
}

func (app *Application) GetTmdbSimilar(w http.ResponseWriter, r *http.Request, movieId api.TmdbMovieId, params api.GetTmdbSimilarParams) {
	app.serveRelated(w, r, movieId, tmdb.Similar, params, params.Page)
}

func (app *Application) GetTmdbGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := app.tmdb.Genres(r.Context())
	if err != nil {
		app.providerErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.ProviderGenresResponse{Genres: genres}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) SearchOmdb(w http.ResponseWriter, r *http.Request, params api.SearchOmdbParams) {
	query, ok := app.readSearchQuery(w, r, params.Query)
	if !ok {
		return
	}

	app.serveProviderList(w, r, params, params.Page, func(ctx context.Context, page int) (*provider.MovieList, error) {
		return app.omdb.Search(ctx, query, page)
	})
}

func (app *Application) GetOmdbMovie(w http.ResponseWriter, r *http.Request, imdbId api.ImdbId) {
	err := app.validator.Var(imdbId, "imdbid")
	if err != nil {
		app.invalidFieldResponse(w, r, "imdbId", appvalidator.ErrIMDbID)
		return
	}

	movie, err := app.omdb.Details(r.Context(), imdbId)
	app.writeProviderMovie(w, r, movie, err)
}

func (app *Application) GetOmdbMovieByTitle(w http.ResponseWriter, r *http.Request, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		app.invalidFieldResponse(w, r, "title", appvalidator.ErrRequired)
		return
	}

	movie, err := app.omdb.ByTitle(r.Context(), title)
	app.writeProviderMovie(w, r, movie, err)
}

func (app *Application) tmdbCategory(category tmdb.Category) listFetcher {
	return func(ctx context.Context, page int) (*provider.MovieList, error) {
		return app.tmdb.List(ctx, category, page)
	}
}

func (app *Application) serveRelated(w http.ResponseWriter, r *http.Request, movieID int, relation tmdb.Relation, params any, page *int) {
	if movieID < 1 {
		app.badRequestResponse(w, r, errors.New(ErrInvalidMovieID))
		return
	}

	app.serveProviderList(w, r, params, page, func(ctx context.Context, page int) (*provider.MovieList, error) {
		return app.tmdb.Related(ctx, movieID, relation, page)
	})
}

// serveProviderList validates the bound query parameters and writes the page
// returned by fetch.
func (app *Application) serveProviderList(w http.ResponseWriter, r *http.Request, params any, page *int, fetch listFetcher) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	list, err := fetch(r.Context(), valueOr(page, 1))
	app.writeProviderList(w, r, list, err)
}

func (app *Application) readSearchQuery(w http.ResponseWriter, r *http.Request, query *string) (string, bool) {
	q := strings.TrimSpace(valueOr(query, ""))
	if q == "" {
		app.invalidFieldResponse(w, r, "query", ErrMissingSearchQuery)
		return "", false
	}

	return q, true
}

func (app *Application) writeProviderList(w http.ResponseWriter, r *http.Request, list *provider.MovieList, err error) {
	if err != nil {
		app.providerErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, list, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) writeProviderMovie(w http.ResponseWriter, r *http.Request, movie *provider.Movie, err error) {
	if err != nil {
		app.providerErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.ProviderMovieResponse{Movie: *movie}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
