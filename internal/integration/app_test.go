package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/moviemate/internal/app"
	"github.com/metinatakli/moviemate/internal/mailer"
	"github.com/metinatakli/moviemate/internal/provider"
	"github.com/metinatakli/moviemate/internal/provider/omdb"
	"github.com/metinatakli/moviemate/internal/provider/tmdb"
	"github.com/metinatakli/moviemate/internal/repository"
	appvalidator "github.com/metinatakli/moviemate/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Mailer *mailer.MockMailer
	OMDb   *fakeOMDb
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	upstream := newFakeOMDb()
	cache := provider.NewRedisCache(redisClient)

	tmdbClient := tmdb.New(provider.NewClient(provider.Config{
		Name:    "tmdb",
		BaseURL: cfg.TMDB.BaseURL,
	}, cache, logger))
	omdbClient := omdb.New(provider.NewClient(provider.Config{
		Name:        "omdb",
		BaseURL:     upstream.URL,
		APIKeyParam: omdb.APIKeyParam,
		APIKey:      "test-key",
	}, cache, logger))

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mailer,
		sessionManager,
		repository.NewPostgresMovieRepository(db),
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresFavoriteRepository(db),
		tmdbClient,
		omdbClient,
	)

	return &TestApp{
		App:    application,
		DB:     db,
		Redis:  redisClient,
		Mailer: mailer,
		OMDb:   upstream,
	}, nil
}

func (a *TestApp) Close() {
	a.OMDb.Close()
	a.Redis.Close()
	a.DB.Close()
}
