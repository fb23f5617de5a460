package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/moviemate/api"
	"github.com/metinatakli/moviemate/internal/catalog"
	"github.com/metinatakli/moviemate/internal/domain"
)

func (app *Application) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := app.currentUser(w, r)
	if !ok {
		return
	}

	err := app.writeJSON(w, http.StatusOK, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var input api.UpdatePreferencesJSONRequestBody

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

	user, ok := app.currentUser(w, r)
	if !ok {
		return
	}

	if input.FavoriteGenres != nil {
		user.Preferences.FavoriteGenres = domain.ToGenres(*input.FavoriteGenres)
	}
	if input.Language != nil {
		user.Preferences.Language = *input.Language
	}

	err = app.userRepo.UpdatePreferences(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetRecommendations suggests catalog movies in the user's favorite genres,
// skipping titles already among their favorites.
func (app *Application) GetRecommendations(w http.ResponseWriter, r *http.Request, params api.GetRecommendationsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user, ok := app.currentUser(w, r)
	if !ok {
		return
	}

	favorites, err := app.favoriteRepo.GetAllByUser(r.Context(), user.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	movies, err := app.catalog.Recommend(r.Context(), catalog.RecommendRequest{
		FavoriteGenres: user.Preferences.FavoriteGenres,
		ExcludeIMDbIDs: domain.FavoriteIMDbIDs(favorites),
		Limit:          valueOr(params.Limit, catalog.DefaultRecommendationLimit),
	})
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	resp := api.RecommendationsResponse{
		Recommendations: toApiMovies(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// currentUser loads the authenticated user. It writes the error response
// itself and reports whether the handler may continue.
func (app *Application) currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	userId := app.contextGetUserId(r)

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.contextGetLogger(r).Error("user id in session but not found in db", "userId", userId)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return nil, false
	}

	return user, true
}

func toUserResponse(user *domain.User) api.UserResponse {
	return api.UserResponse{
		Id:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Preferences: api.Preferences{
			FavoriteGenres: domain.GenreStrings(user.Preferences.FavoriteGenres),
			Language:       user.Preferences.Language,
		},
		CreatedAt: user.CreatedAt,
		Version:   user.Version,
	}
}
