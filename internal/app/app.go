package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/moviemate/api"
	"github.com/metinatakli/moviemate/internal/catalog"
	"github.com/metinatakli/moviemate/internal/domain"
	"github.com/metinatakli/moviemate/internal/mailer"
	"github.com/metinatakli/moviemate/internal/provider"
	"github.com/metinatakli/moviemate/internal/provider/omdb"
	"github.com/metinatakli/moviemate/internal/provider/tmdb"
	"github.com/metinatakli/moviemate/internal/repository"
	"github.com/metinatakli/moviemate/internal/seed"
	appvalidator "github.com/metinatakli/moviemate/internal/validator"
	"github.com/metinatakli/moviemate/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const serviceName = "moviemate-api"

var (
	version = vcs.Version()
)

type tmdbClient interface {
	List(ctx context.Context, category tmdb.Category, page int) (*provider.MovieList, error)
	Trending(ctx context.Context, window tmdb.TimeWindow, page int) (*provider.MovieList, error)
	Search(ctx context.Context, query string, page int) (*provider.MovieList, error)
	ByGenre(ctx context.Context, genreID, page int) (*provider.MovieList, error)
	Related(ctx context.Context, movieID int, relation tmdb.Relation, page int) (*provider.MovieList, error)
	Details(ctx context.Context, movieID int) (*provider.Movie, error)
	Genres(ctx context.Context) ([]provider.Genre, error)
}

type omdbClient interface {
	Search(ctx context.Context, query string, page int) (*provider.MovieList, error)
	Details(ctx context.Context, imdbID string) (*provider.Movie, error)
	ByTitle(ctx context.Context, title string) (*provider.Movie, error)
}

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	mongo          *mongo.Client
	redis          redis.UniversalClient
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager

	catalog      *catalog.Service
	movieRepo    domain.MovieRepository
	userRepo     domain.UserRepository
	favoriteRepo domain.FavoriteRepository

	tmdb tmdbClient
	omdb omdbClient
}

// NewApp assembles an Application from already connected dependencies.
func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	mailer mailer.Mailer,
	sessionManager *scs.SessionManager,
	movieRepo domain.MovieRepository,
	userRepo domain.UserRepository,
	favoriteRepo domain.FavoriteRepository,
	tmdb tmdbClient,
	omdb omdbClient,
) *Application {
	return &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		redis:          redisClient,
		validator:      validator,
		mailer:         mailer,
		sessionManager: sessionManager,
		catalog:        catalog.NewService(movieRepo),
		movieRepo:      movieRepo,
		userRepo:       userRepo,
		favoriteRepo:   favoriteRepo,
		tmdb:           tmdb,
		omdb:           omdb,
	}
}

func Run() error {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	if cfg.DisplayVersion {
		fmt.Printf("Version:\t%s\n", version)
		return nil
	}

	app := &Application{
		config: cfg,
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.SentryDSN != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Env,
			Release:          version,
			AttachStacktrace: true,
		})
		if err != nil {
			return fmt.Errorf("init sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	err = app.open(context.Background())
	if err != nil {
		app.logger.Error("failed to initialize application", "error", err)
		return err
	}
	defer app.close()

	return app.run()
}

// open connects to every backing service and builds the repositories,
// catalog service and provider clients on top of them.
func (app *Application) open(ctx context.Context) error {
	_, err := api.LoadSpec(ctx)
	if err != nil {
		return fmt.Errorf("load openapi spec: %w", err)
	}

	db, err := NewDatabasePool(app.config)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	app.db = db

	redisClient, err := NewRedisClient(app.config)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	app.redis = redisClient

	movieRepo, err := app.newMovieRepository(ctx)
	if err != nil {
		return err
	}

	cache := provider.NewRedisCache(redisClient)

	app.validator = appvalidator.NewValidator()
	app.sessionManager = NewSessionManager(redisClient)
	app.mailer = mailer.NewSMTPMailer(
		app.config.SMTP.Host,
		app.config.SMTP.Port,
		app.config.SMTP.Username,
		app.config.SMTP.Password,
		app.config.SMTP.Sender,
	)
	app.movieRepo = movieRepo
	app.catalog = catalog.NewService(movieRepo)
	app.userRepo = repository.NewPostgresUserRepository(db)
	app.favoriteRepo = repository.NewPostgresFavoriteRepository(db)
	app.tmdb = tmdb.New(provider.NewClient(provider.Config{
		Name:        "tmdb",
		BaseURL:     app.config.TMDB.BaseURL,
		APIKeyParam: tmdb.APIKeyParam,
		APIKey:      app.config.TMDB.APIKey,
	}, cache, app.logger))
	app.omdb = omdb.New(provider.NewClient(provider.Config{
		Name:        "omdb",
		BaseURL:     app.config.OMDb.BaseURL,
		APIKeyParam: omdb.APIKeyParam,
		APIKey:      app.config.OMDb.APIKey,
	}, cache, app.logger))

	return nil
}

func (app *Application) newMovieRepository(ctx context.Context) (domain.MovieRepository, error) {
	switch app.config.CatalogBackend {
	case CatalogMongo:
		client, db, err := NewMongoDatabase(ctx, app.config)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		app.mongo = client

		repo := repository.NewMongoMovieRepository(db)

		err = repo.EnsureIndexes(ctx)
		if err != nil {
			return nil, fmt.Errorf("create mongo indexes: %w", err)
		}

		return repo, nil
	case CatalogMemory:
		movies, err := seed.Movies()
		if err != nil {
			return nil, err
		}

		app.logger.Info("using in-memory catalog", "movies", len(movies))

		return repository.NewMemoryMovieRepository(movies...), nil
	default:
		return repository.NewPostgresMovieRepository(app.db), nil
	}
}

func (app *Application) close() {
	if app.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := app.mongo.Disconnect(ctx)
		if err != nil {
			app.logger.Error("failed to disconnect mongo", "error", err)
		}
	}

	if app.redis != nil {
		app.redis.Close()
	}

	if app.db != nil {
		app.db.Close()
	}
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func NewMongoDatabase(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, nil, err
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	return client, client.Database(cfg.Mongo.Database), nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server",
		"addr", srv.Addr,
		"env", app.config.Env,
		"catalog", app.config.CatalogBackend,
	)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
