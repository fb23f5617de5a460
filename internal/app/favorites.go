package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/moviemate/api"
	"github.com/metinatakli/moviemate/internal/domain"
	appvalidator "github.com/metinatakli/moviemate/internal/validator"
)

func (app *Application) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	app.writeFavorites(w, r, userId, http.StatusOK)
}

func (app *Application) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	var input api.AddFavoriteJSONRequestBody

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

	favorite := domain.NewFavorite(userId, input.ImdbId, input.Title, input.Poster, input.Rating)

	err = app.favoriteRepo.Add(r.Context(), favorite)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateFavorite):
			app.conflictResponse(w, r, ErrDuplicateFavorite)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.writeFavorites(w, r, userId, http.StatusCreated)
}

func (app *Application) RemoveFavorite(w http.ResponseWriter, r *http.Request, imdbId api.ImdbId) {
	userId := app.contextGetUserId(r)

	err := app.validator.Var(imdbId, "imdbid")
	if err != nil {
		app.invalidFieldResponse(w, r, "imdbId", appvalidator.ErrIMDbID)
		return
	}

	err = app.favoriteRepo.Remove(r.Context(), userId, imdbId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.writeFavorites(w, r, userId, http.StatusOK)
}

func (app *Application) writeFavorites(w http.ResponseWriter, r *http.Request, userId, status int) {
	favorites, err := app.favoriteRepo.GetAllByUser(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.FavoritesResponse{
		Favorites: toApiFavorites(favorites),
	}

	err = app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiFavorites(favorites []*domain.Favorite) []api.Favorite {
	out := make([]api.Favorite, len(favorites))
	for i, f := range favorites {
		out[i] = api.Favorite{
			ImdbId:    f.IMDbID,
			Title:     f.Title,
			Poster:    f.Poster,
			Rating:    f.Rating,
			CreatedAt: f.CreatedAt,
		}
	}

	return out
}
