package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/moviemate/internal/domain"
)

const userColumns = `id, name, email, password_hash, is_admin, favorite_genres, language, created_at, updated_at, version`

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (p *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (name, email, password_hash, is_admin, favorite_genres, language)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at, version`

	err := p.db.QueryRow(ctx,
		query,
		user.Name,
		user.Email,
		user.Password.Hash,
		user.IsAdmin,
		domain.GenreStrings(user.Preferences.FavoriteGenres),
		user.Preferences.Language,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Version)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrUserAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	return scanUser(p.db.QueryRow(ctx, query, email))
}

func (p *PostgresUserRepository) GetById(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return scanUser(p.db.QueryRow(ctx, query, id))
}

func (p *PostgresUserRepository) UpdatePreferences(ctx context.Context, user *domain.User) error {
	query := `UPDATE users
		SET favorite_genres = $1, language = $2, updated_at = NOW(), version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING updated_at, version`

	err := p.db.QueryRow(ctx,
		query,
		domain.GenreStrings(user.Preferences.FavoriteGenres),
		user.Preferences.Language,
		user.ID,
		user.Version,
	).Scan(&user.UpdatedAt, &user.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEditConflict
		}

		return err
	}

	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user   domain.User
		genres []string
	)

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password.Hash,
		&user.IsAdmin,
		&genres,
		&user.Preferences.Language,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	user.Preferences.FavoriteGenres = domain.ToGenres(genres)

	return &user, nil
}
