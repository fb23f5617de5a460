package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/moviemate/api"
	"github.com/metinatakli/moviemate/internal/domain"
	appvalidator "github.com/metinatakli/moviemate/internal/validator"
)

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateMovieJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := &domain.Movie{}
	applyMovieRequest(movie, input)

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		logger.Error("failed to create movie", "error", err)
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("movie created", "movieId", movie.ID)

	resp := api.MovieMutationResponse{
		Message: "Movie created successfully",
		Movie:   toApiMovie(movie),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, id int64) {
	if id < 1 {
		app.badRequestResponse(w, r, errors.New(ErrInvalidMovieID))
		return
	}

	var input api.UpdateMovieJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	if input.Version == 0 {
		app.invalidFieldResponse(w, r, "version", appvalidator.ErrRequired)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	if movie.Version != input.Version {
		app.editConflictResponse(w, r)
		return
	}

	applyMovieRequest(movie, input)

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	resp := api.MovieMutationResponse{
		Message: "Movie updated successfully",
		Movie:   toApiMovie(movie),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, id int64) {
	if id < 1 {
		app.badRequestResponse(w, r, errors.New(ErrInvalidMovieID))
		return
	}

	err := app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("movie deleted", "movieId", id)

	resp := api.MessageResponse{
		Message: "Movie deleted successfully",
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func applyMovieRequest(m *domain.Movie, input api.MovieRequest) {
	m.Title = input.Title
	m.Overview = input.Overview
	m.Poster = input.Poster
	m.Backdrop = input.Backdrop
	m.Rating = input.Rating
	m.Year = input.Year
	m.Genres = domain.ToGenres(input.Genre)
	m.Duration = input.Duration
	m.Director = input.Director
	m.Cast = nonNil(input.Cast)
	m.Language = input.Language
	m.Country = input.Country
	m.Featured = input.Featured
	m.Popularity = input.Popularity
	m.Tags = nonNil(input.Tags)
	m.Trailer = input.Trailer
	m.IMDbID = input.ImdbId

	if m.Language == "" {
		m.Language = domain.DefaultMovieLang
	}
	if m.Country == "" {
		m.Country = domain.DefaultMovieCountry
	}
}
