package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/metinatakli/moviemate/api"
	"github.com/metinatakli/moviemate/internal/catalog"
	"github.com/metinatakli/moviemate/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	minRating = decimal.NewFromFloat(domain.MinRatingValue)
	maxRating = decimal.NewFromFloat(domain.MaxRatingValue)
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request, params api.GetMoviesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	query, err := toMovieQuery(params)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidArgument):
			app.invalidFieldResponse(w, r, "rating", fmt.Sprintf("must be between %s and %s", minRating, maxRating))
		default:
			app.badRequestResponse(w, r, err)
		}

		return
	}

	page, err := app.catalog.ListMovies(r.Context(), query)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:     toApiMovies(page.Items),
		Pagination: toApiPagination(page.Pagination),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) SearchMovies(w http.ResponseWriter, r *http.Request, query string, params api.SearchMoviesParams) {
	term := strings.TrimSpace(query)
	if term == "" {
		app.invalidFieldResponse(w, r, "query", ErrMissingSearchQuery)
		return
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	page, err := app.catalog.Search(r.Context(), term,
		valueOr(params.Page, domain.DefaultPage),
		valueOr(params.Limit, domain.DefaultLimit),
	)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	resp := api.MovieSearchResponse{
		Movies:     toApiMovies(page.Items),
		Query:      term,
		Pagination: toApiPagination(page.Pagination),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetFeaturedMovies(w http.ResponseWriter, r *http.Request, params api.GetFeaturedMoviesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movies, err := app.catalog.Featured(r.Context(), valueOr(params.Limit, catalog.DefaultFeaturedLimit))
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	resp := api.FeaturedMoviesResponse{
		Movies: toApiMovies(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := app.catalog.Genres(r.Context())
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	resp := api.GenresResponse{
		Genres: domain.GenreStrings(genres),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request, id int64) {
	if id < 1 {
		app.badRequestResponse(w, r, errors.New(ErrInvalidMovieID))
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	resp := api.MovieResponse{
		Movie: toApiMovie(movie),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieQuery(params api.GetMoviesParams) (domain.MovieQuery, error) {
	q := domain.NewMovieQuery()

	q.Page = valueOr(params.Page, q.Page)
	q.Limit = valueOr(params.Limit, q.Limit)
	q.Year = params.Year
	q.Featured = params.Featured
	q.Search = valueOr(params.Search, "")

	if params.Genre != nil {
		q.Genres = domain.ToGenres(*params.Genre)
	}
	if params.SortBy != nil {
		q.SortField = domain.SortField(*params.SortBy)
	}
	if params.SortOrder != nil {
		q.SortDirection = domain.SortDirection(*params.SortOrder)
	}

	if params.Rating != nil && strings.TrimSpace(*params.Rating) != "" {
		rating, err := decimal.NewFromString(strings.TrimSpace(*params.Rating))
		if err != nil {
			return q, errors.New(ErrInvalidRatingFilter)
		}

		if rating.LessThan(minRating) || rating.GreaterThan(maxRating) {
			return q, fmt.Errorf("%w: rating %s out of range", domain.ErrInvalidArgument, rating)
		}

		q.MinRating = &rating
	}

	return q, nil
}

func toApiMovies(movies []*domain.Movie) []api.Movie {
	out := make([]api.Movie, len(movies))
	for i, m := range movies {
		out[i] = toApiMovie(m)
	}

	return out
}

func toApiMovie(m *domain.Movie) api.Movie {
	if m == nil {
		return api.Movie{}
	}

	return api.Movie{
		Id:         m.ID,
		Title:      m.Title,
		Overview:   m.Overview,
		Poster:     m.Poster,
		Backdrop:   m.Backdrop,
		Rating:     m.Rating,
		Year:       m.Year,
		Genre:      domain.GenreStrings(m.Genres),
		Duration:   m.Duration,
		Director:   m.Director,
		Cast:       nonNil(m.Cast),
		Language:   m.Language,
		Country:    m.Country,
		Featured:   m.Featured,
		Popularity: m.Popularity,
		Tags:       nonNil(m.Tags),
		Trailer:    m.Trailer,
		ImdbId:     m.IMDbID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		Version:    m.Version,
	}
}

func toApiPagination(p domain.Pagination) api.Pagination {
	return api.Pagination{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		TotalItems:  p.TotalItems,
		HasNext:     p.HasNext,
		HasPrev:     p.HasPrev,
	}
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}

	return values
}
