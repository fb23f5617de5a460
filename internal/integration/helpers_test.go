package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/moviemate/internal/domain"
	"github.com/metinatakli/moviemate/internal/repository"
	"github.com/metinatakli/moviemate/internal/seed"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
	"updatedAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(&c)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}

		switch v := m[k].(type) {
		case map[string]any:
			cleanMap(v)
		case []any:
			for _, item := range v {
				if nested, ok := item.(map[string]any); ok {
					cleanMap(nested)
				}
			}
		}
	}
}

func truncateTables(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), `TRUNCATE favorites, users, movies RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

// seedCatalog loads the starter catalog, so movie ids follow its order.
func seedCatalog(t testing.TB, db *pgxpool.Pool) {
	n, err := seed.Load(context.Background(), repository.NewPostgresMovieRepository(db))
	require.NoError(t, err)
	require.Equal(t, SeededMovieCount, n)
}

func createTestUser(t testing.TB, db *pgxpool.Pool, email string, isAdmin bool, genres ...domain.Genre) *domain.User {
	user := &domain.User{
		Name:    TestUserName,
		Email:   email,
		IsAdmin: isAdmin,
		Preferences: domain.Preferences{
			FavoriteGenres: genres,
			Language:       "en",
		},
	}
	require.NoError(t, user.Password.Set(TestUserPassword))

	err := repository.NewPostgresUserRepository(db).Create(context.Background(), user)
	require.NoError(t, err)

	return user
}

func addTestFavorite(t testing.TB, db *pgxpool.Pool, userID int, imdbID, title string) {
	favorite := domain.NewFavorite(userID, imdbID, title, "", "")

	err := repository.NewPostgresFavoriteRepository(db).Add(context.Background(), favorite)
	require.NoError(t, err)
}

// login authenticates through the real session endpoint and returns the
// session cookie.
func (a *TestApp) login(t testing.TB, email string) []http.Cookie {
	body := strings.NewReader(`{"email": "` + email + `", "password": "` + TestUserPassword + `"}`)

	req, err := prepareRequest(http.MethodPost, "/sessions", body, nil, nil)
	require.NoError(t, err)

	res := recordRequest(a, req).Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusNoContent, res.StatusCode)

	cookies := []http.Cookie{}
	for _, c := range res.Cookies() {
		cookies = append(cookies, *c)
	}
	require.NotEmpty(t, cookies, "login did not set a session cookie")

	return cookies
}

// fakeOMDb serves a single title and counts the requests that reach it.
type fakeOMDb struct {
	*httptest.Server
	hits atomic.Int64
}

func newFakeOMDb() *fakeOMDb {
	f := &fakeOMDb{}

	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)

		w.Header().Set("Content-Type", "application/json")

		if r.URL.Query().Get("i") != TestFavoriteIMDbID {
			io.WriteString(w, `{"Response": "False", "Error": "Incorrect IMDb ID."}`)
			return
		}

		io.WriteString(w, `{
			"Response": "True",
			"Title": "The Shawshank Redemption",
			"Year": "1994",
			"Runtime": "142 min",
			"Genre": "Drama",
			"Director": "Frank Darabont",
			"Actors": "Tim Robbins, Morgan Freeman",
			"Plot": "Two imprisoned men bond over a number of years.",
			"Language": "English",
			"Country": "United States",
			"Poster": "N/A",
			"imdbRating": "9.3",
			"imdbVotes": "2,900,000",
			"imdbID": "tt0111161"
		}`)
	}))

	return f
}

func recordRequest(app *TestApp, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	return rec
}
