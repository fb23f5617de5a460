package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/moviemate/api"
	"github.com/metinatakli/moviemate/internal/catalog"
	"github.com/metinatakli/moviemate/internal/domain"
	"github.com/metinatakli/moviemate/internal/mailer"
	"github.com/metinatakli/moviemate/internal/mocks"
	"github.com/metinatakli/moviemate/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		validator:      validator.NewValidator(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager: scs.New(),
		movieRepo:      &mocks.MockMovieRepo{},
		userRepo:       &mocks.MockUserRepo{},
		favoriteRepo:   &mocks.MockFavoriteRepo{},
		mailer:         mailer.NewMockMailer(),
		tmdb:           &mocks.MockTMDBClient{},
		omdb:           &mocks.MockOMDbClient{},
	}

	for _, opt := range opts {
		opt(app)
	}

	app.catalog = catalog.NewService(app.movieRepo)

	return app
}

func setupTestSession(t *testing.T, app *Application, r *http.Request, userId int) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "session")
	if err != nil {
		t.Errorf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)

	return r.WithContext(ctx)
}

// withUser mimics requireAuthentication for handlers called directly.
func withUser(r *http.Request, userId int) *http.Request {
	ctx := context.WithValue(r.Context(), SessionKeyUserId, userId)
	return r.WithContext(ctx)
}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// serverWrapper binds path and query parameters the way the router does,
// without the session and rate limit middleware.
func serverWrapper(app *Application) *api.ServerInterfaceWrapper {
	return &api.ServerInterfaceWrapper{
		Handler:          app,
		ErrorHandlerFunc: app.paramErrorResponse,
	}
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		if tt.wantErrMessage == "" {
			return
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response %+v", tt.wantErrMessage, validationResp.ValidationErrors)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func testMovies() []*domain.Movie {
	return []*domain.Movie{
		{
			ID:         1,
			Title:      "Quantum Horizon",
			Overview:   "A physicist discovers parallel dimensions.",
			Rating:     8.7,
			Year:       2024,
			Genres:     []domain.Genre{domain.GenreSciFi, domain.GenreThriller},
			Cast:       []string{"Emma Stone", "Ryan Gosling"},
			Featured:   true,
			Popularity: 95,
			IMDbID:     "tt0000001",
			Version:    1,
		},
		{
			ID:         2,
			Title:      "Shadow's Edge",
			Overview:   "An elite assassin protects a witness.",
			Rating:     7.9,
			Year:       2023,
			Genres:     []domain.Genre{domain.GenreAction, domain.GenreThriller},
			Cast:       []string{"Tom Hardy"},
			Featured:   true,
			Popularity: 88,
			Version:    1,
		},
		{
			ID:         3,
			Title:      "Love in Tokyo",
			Overview:   "Two strangers meet during cherry blossom season.",
			Rating:     7.2,
			Year:       2022,
			Genres:     []domain.Genre{domain.GenreRomance, domain.GenreDrama},
			Cast:       []string{"Lily Collins"},
			Popularity: 60,
			IMDbID:     "tt0000003",
			Version:    1,
		},
		{
			ID:         4,
			Title:      "The Haunted Manor",
			Overview:   "A family moves into a house with a dark past.",
			Rating:     6.8,
			Year:       2021,
			Genres:     []domain.Genre{domain.GenreHorror},
			Cast:       []string{"Vera Farmiga"},
			Popularity: 55,
			Version:    1,
		},
	}
}

func fetchAllFixture(ctx context.Context, criteria domain.MovieCriteria) ([]*domain.Movie, error) {
	return testMovies(), nil
}

func movieIDs(movies []api.Movie) []int64 {
	ids := make([]int64, len(movies))
	for i, m := range movies {
		ids[i] = m.Id
	}

	return ids
}

func ptr[T any](v T) *T {
	return &v
}
