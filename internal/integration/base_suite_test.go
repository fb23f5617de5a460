package integration_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/moviemate/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

const (
	dbName         = "moviemate"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"
)

type BaseSuite struct {
	suite.Suite
	app            *TestApp
	dbContainer    *PostgresContainer
	cacheContainer *RedisContainer
	server         *httptest.Server
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	postgresContainer, err := getDbContainer(ctx)
	s.Require().NoError(err, "failed to start db container")

	redisContainer, err := getCacheContainer(ctx)
	s.Require().NoError(err, "failed to start cache container")

	s.dbContainer = postgresContainer
	s.cacheContainer = redisContainer

	cfg := app.Config{
		Port:           3000,
		Env:            "test",
		CatalogBackend: app.CatalogPostgres,
	}
	cfg.DB.DSN = postgresContainer.ConnectionString
	cfg.DB.MaxOpenConns = 25
	cfg.DB.MaxIdleTime = 2 * time.Minute
	cfg.Redis.URL = redisContainer.ConnectionString
	cfg.Redis.MaxOpenConns = 10
	cfg.Redis.MaxIdleConns = 10
	cfg.Redis.MaxIdleTime = 2 * time.Minute
	cfg.RateLimit.Enabled = false

	testApp, err := newTestApp(cfg)
	s.Require().NoError(err, "cannot initialize app")

	s.app = testApp
	s.server = httptest.NewServer(testApp.App.Routes())
}

func (s *BaseSuite) TearDownSuite() {
	s.server.Close()
	s.app.Close()
	if err := testcontainers.TerminateContainer(s.dbContainer.Container); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
	if err := testcontainers.TerminateContainer(s.cacheContainer.Container); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

type Scenario struct {
	Name             string
	Method           string
	URL              string
	Body             io.Reader
	Headers          map[string]string
	Cookies          []http.Cookie
	CookiesFunc      func(t testing.TB, app *TestApp) []http.Cookie
	ExpectedStatus   int
	ExpectedResponse string
	BeforeTestFunc   func(t testing.TB, app *TestApp)
	AfterTestFunc    func(t testing.TB, app *TestApp, res *http.Response)
}

func (s Scenario) Run(t *testing.T, testApp *TestApp) {
	t.Run(s.Name, func(t *testing.T) {
		if s.BeforeTestFunc != nil {
			s.BeforeTestFunc(t, testApp)
		}

		// sessions can only be opened once BeforeTestFunc created the user
		cookies := s.Cookies
		if s.CookiesFunc != nil {
			cookies = append(cookies, s.CookiesFunc(t, testApp)...)
		}

		req, err := prepareRequest(s.Method, s.URL, s.Body, s.Headers, cookies)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		testApp.App.Routes().ServeHTTP(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		assert.Equal(t, s.ExpectedStatus, res.StatusCode)

		if s.ExpectedResponse != "" {
			compareResponse(t, res.Body, s.ExpectedResponse)
		}

		if s.AfterTestFunc != nil {
			s.AfterTestFunc(t, testApp, res)
		}
	})
}
