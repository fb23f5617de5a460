// Command migrate applies the SQL migrations under ./migrations to the
// PostgreSQL database configured by MOVIEMATE_DB_DSN or -db-dsn.
//
// Usage:
//
//	migrate [-db-dsn dsn] [-path file://migrations] [-steps n] up|down|version
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	pgxstd "github.com/jackc/pgx/v5/stdlib"
	"github.com/metinatakli/moviemate/internal/app"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	err := run(logger, os.Args[1:])
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, args []string) error {
	cfg, err := app.LoadConfig(nil)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)

	dsn := fs.String("db-dsn", cfg.DB.DSN, "PostgreSQL DSN")
	path := fs.String("path", "file://migrations", "Migration source URL")
	steps := fs.Int("steps", 0, "Number of migrations to apply, 0 means all")

	err = fs.Parse(args)
	if err != nil {
		return err
	}

	command := fs.Arg(0)
	if command == "" {
		command = "up"
	}

	m, err := newMigrator(*dsn, *path)
	if err != nil {
		return err
	}
	defer m.Close()

	switch command {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return err
		}

		logger.Info("schema version", "version", version, "dirty", dirty)
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("schema already up to date")
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("migrations applied", "command", command)

	return nil
}

func newMigrator(dsn, source string) (*migrate.Migrate, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	db := pgxstd.OpenDB(*config)

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("pgx migration driver: %w", err)
	}

	return migrate.NewWithDatabaseInstance(source, "pgx", driver)
}
