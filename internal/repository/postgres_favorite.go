package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/moviemate/internal/domain"
)

type PostgresFavoriteRepository struct {
	db *pgxpool.Pool
}

func NewPostgresFavoriteRepository(db *pgxpool.Pool) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{
		db: db,
	}
}

func (p *PostgresFavoriteRepository) GetAllByUser(ctx context.Context, userID int) ([]*domain.Favorite, error) {
	query := `SELECT id, user_id, imdb_id, title, poster, rating, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at, id`

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := []*domain.Favorite{}

	for rows.Next() {
		var f domain.Favorite

		err := rows.Scan(&f.ID, &f.UserID, &f.IMDbID, &f.Title, &f.Poster, &f.Rating, &f.CreatedAt)
		if err != nil {
			return nil, err
		}

		favorites = append(favorites, &f)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return favorites, nil
}

func (p *PostgresFavoriteRepository) Add(ctx context.Context, favorite *domain.Favorite) error {
	query := `INSERT INTO favorites (id, user_id, imdb_id, title, poster, rating)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := p.db.QueryRow(ctx,
		query,
		favorite.ID,
		favorite.UserID,
		favorite.IMDbID,
		favorite.Title,
		favorite.Poster,
		favorite.Rating,
	).Scan(&favorite.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateFavorite
		}

		return err
	}

	return nil
}

func (p *PostgresFavoriteRepository) Remove(ctx context.Context, userID int, imdbID string) error {
	result, err := p.db.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND imdb_id = $2`, userID, imdbID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
