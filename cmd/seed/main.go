// Command seed replaces the movies in the configured catalog backend with
// the starter catalog. It accepts the same flags and MOVIEMATE_* variables as
// the API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/metinatakli/moviemate/internal/app"
	"github.com/metinatakli/moviemate/internal/repository"
	"github.com/metinatakli/moviemate/internal/seed"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	err := run(logger, os.Args[1:])
	if err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, args []string) error {
	cfg, err := app.LoadConfig(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var n int

	switch cfg.CatalogBackend {
	case app.CatalogPostgres:
		db, err := app.NewDatabasePool(cfg)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer db.Close()

		n, err = seed.Load(ctx, repository.NewPostgresMovieRepository(db))
		if err != nil {
			return err
		}
	case app.CatalogMongo:
		client, mdb, err := app.NewMongoDatabase(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		defer client.Disconnect(context.Background())

		repo := repository.NewMongoMovieRepository(mdb)

		err = repo.EnsureIndexes(ctx)
		if err != nil {
			return err
		}

		n, err = seed.Load(ctx, repo)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("catalog backend %q is seeded at startup", cfg.CatalogBackend)
	}

	logger.Info("catalog seeded", "backend", cfg.CatalogBackend, "movies", n)

	return nil
}
