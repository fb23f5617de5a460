package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "MOVIEMATE"

const (
	CatalogPostgres = "postgres"
	CatalogMongo    = "mongo"
	CatalogMemory   = "memory"
)

type Config struct {
	Port             int    `envconfig:"PORT" default:"3000"`
	Env              string `envconfig:"ENV" default:"dev"`
	CatalogBackend   string `envconfig:"CATALOG_BACKEND" default:"postgres"`
	OtelCollectorUrl string `envconfig:"OTEL_COLLECTOR_URL"`
	SentryDSN        string `envconfig:"SENTRY_DSN"`
	DisplayVersion   bool   `ignored:"true"`

	DB struct {
		DSN          string        `envconfig:"DSN"`
		MaxOpenConns int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
		MaxIdleTime  time.Duration `envconfig:"MAX_IDLE_TIME" default:"15m"`
	}
	Mongo struct {
		URI      string `envconfig:"URI" default:"mongodb://localhost:27017"`
		Database string `envconfig:"DATABASE" default:"moviemate"`
	}
	Redis struct {
		URL          string        `envconfig:"URL" default:"localhost:6379"`
		MaxOpenConns int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
		MaxIdleTime  time.Duration `envconfig:"MAX_IDLE_TIME" default:"2m"`
	}
	SMTP struct {
		Host     string `envconfig:"HOST" default:"sandbox.smtp.mailtrap.io"`
		Port     int    `envconfig:"PORT" default:"2525"`
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
		Sender   string `envconfig:"SENDER" default:"MovieMate <no-reply@moviemate.metinatakli.net>"`
	}
	TMDB struct {
		APIKey  string `envconfig:"API_KEY"`
		BaseURL string `envconfig:"BASE_URL" default:"https://api.themoviedb.org/3"`
	}
	OMDb struct {
		APIKey  string `envconfig:"API_KEY"`
		BaseURL string `envconfig:"BASE_URL" default:"https://www.omdbapi.com"`
	}
	CORS struct {
		TrustedOrigins []string `envconfig:"TRUSTED_ORIGINS"`
	}
	RateLimit struct {
		Enabled  bool          `envconfig:"ENABLED" default:"true"`
		Requests int           `envconfig:"REQUESTS" default:"20"`
		Window   time.Duration `envconfig:"WINDOW" default:"1m"`
	}
}

// LoadConfig reads settings from a .env file and MOVIEMATE_* environment
// variables, then lets command-line flags override them.
func LoadConfig(args []string) (Config, error) {
	var cfg Config

	// a missing .env file is fine
	_ = godotenv.Load()

	err := envconfig.Process(envPrefix, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config from environment: %w", err)
	}

	fs := flag.NewFlagSet("moviemate", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "port", cfg.Port, "server port")
	fs.StringVar(&cfg.Env, "env", cfg.Env, "Environment (dev|staging|prod)")
	fs.StringVar(&cfg.CatalogBackend, "catalog-backend", cfg.CatalogBackend, "Movie catalog store (postgres|mongo|memory)")

	fs.StringVar(&cfg.DB.DSN, "db-dsn", cfg.DB.DSN, "PostgreSQL DSN")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", cfg.DB.MaxOpenConns, "PostgreSQL max open connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", cfg.DB.MaxIdleTime, "PostgreSQL max idle time for connections")

	fs.StringVar(&cfg.Mongo.URI, "mongo-uri", cfg.Mongo.URI, "MongoDB connection URI")
	fs.StringVar(&cfg.Mongo.Database, "mongo-database", cfg.Mongo.Database, "MongoDB database name")

	fs.StringVar(&cfg.Redis.URL, "redis-url", cfg.Redis.URL, "Redis URL")
	fs.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", cfg.Redis.MaxOpenConns, "Redis max open connections")
	fs.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", cfg.Redis.MaxIdleConns, "Redis max idle connections")
	fs.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", cfg.Redis.MaxIdleTime, "Redis max idle time for connections")

	fs.StringVar(&cfg.SMTP.Host, "smtp-host", cfg.SMTP.Host, "SMTP host")
	fs.IntVar(&cfg.SMTP.Port, "smtp-port", cfg.SMTP.Port, "SMTP port")
	fs.StringVar(&cfg.SMTP.Username, "smtp-username", cfg.SMTP.Username, "SMTP username")
	fs.StringVar(&cfg.SMTP.Password, "smtp-password", cfg.SMTP.Password, "SMTP password")
	fs.StringVar(&cfg.SMTP.Sender, "smtp-sender", cfg.SMTP.Sender, "SMTP sender")

	fs.StringVar(&cfg.TMDB.APIKey, "tmdb-api-key", cfg.TMDB.APIKey, "TMDB API key")
	fs.StringVar(&cfg.TMDB.BaseURL, "tmdb-base-url", cfg.TMDB.BaseURL, "TMDB API base URL")
	fs.StringVar(&cfg.OMDb.APIKey, "omdb-api-key", cfg.OMDb.APIKey, "OMDb API key")
	fs.StringVar(&cfg.OMDb.BaseURL, "omdb-base-url", cfg.OMDb.BaseURL, "OMDb API base URL")

	fs.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		cfg.CORS.TrustedOrigins = strings.Fields(val)
		return nil
	})

	fs.BoolVar(&cfg.RateLimit.Enabled, "limiter-enabled", cfg.RateLimit.Enabled, "Enable rate limiting on auth and provider routes")
	fs.IntVar(&cfg.RateLimit.Requests, "limiter-requests", cfg.RateLimit.Requests, "Requests allowed per client and window")
	fs.DurationVar(&cfg.RateLimit.Window, "limiter-window", cfg.RateLimit.Window, "Rate limit window")

	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", cfg.OtelCollectorUrl, "OpenTelemetry collector gRPC endpoint")
	fs.StringVar(&cfg.SentryDSN, "sentry-dsn", cfg.SentryDSN, "Sentry DSN")

	fs.BoolVar(&cfg.DisplayVersion, "version", false, "Display version and exit")

	err = fs.Parse(args)
	if err != nil {
		return cfg, err
	}

	switch cfg.CatalogBackend {
	case CatalogPostgres, CatalogMongo, CatalogMemory:
	default:
		return cfg, fmt.Errorf("unknown catalog backend %q", cfg.CatalogBackend)
	}

	return cfg, nil
}
