package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/moviemate/internal/domain"
)

const movieColumns = `id, title, overview, poster, backdrop, rating, year, genres, duration, director,
	cast_members, language, country, featured, popularity, tags, trailer, imdb_id, created_at, updated_at, version`

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

// FetchAll pushes the structured filters down to PostgreSQL. Free-text search
// is left to the caller.
func (p *PostgresMovieRepository) FetchAll(ctx context.Context, criteria domain.MovieCriteria) ([]*domain.Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies
		WHERE (cardinality($1::text[]) = 0 OR genres && $1::text[])
			AND ($2::int IS NULL OR year = $2)
			AND ($3::numeric IS NULL OR rating >= $3)
			AND ($4::boolean IS NULL OR featured = $4)
		ORDER BY id`

	var minRating *float64
	if criteria.MinRating != nil {
		v := criteria.MinRating.InexactFloat64()
		minRating = &v
	}

	genres := domain.GenreStrings(criteria.Genres)

	rows, err := p.db.Query(ctx, query, genres, criteria.Year, minRating, criteria.Featured)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int64) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (title, overview, poster, backdrop, rating, year, genres, duration, director,
			cast_members, language, country, featured, popularity, tags, trailer, imdb_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NULLIF($17, ''))
		RETURNING id, created_at, updated_at, version`

	return p.db.QueryRow(ctx, query,
		movie.Title,
		movie.Overview,
		movie.Poster,
		movie.Backdrop,
		movie.Rating,
		movie.Year,
		domain.GenreStrings(movie.Genres),
		movie.Duration,
		movie.Director,
		nonNil(movie.Cast),
		movie.Language,
		movie.Country,
		movie.Featured,
		movie.Popularity,
		nonNil(movie.Tags),
		movie.Trailer,
		movie.IMDbID,
	).Scan(&movie.ID, &movie.CreatedAt, &movie.UpdatedAt, &movie.Version)
}

// Update applies optimistic locking on the version column.
func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movies
		SET title = $1, overview = $2, poster = $3, backdrop = $4, rating = $5, year = $6, genres = $7,
			duration = $8, director = $9, cast_members = $10, language = $11, country = $12, featured = $13,
			popularity = $14, tags = $15, trailer = $16, imdb_id = NULLIF($17, ''),
			updated_at = NOW(), version = version + 1
		WHERE id = $18 AND version = $19
		RETURNING updated_at, version`

	err := p.db.QueryRow(ctx, query,
		movie.Title,
		movie.Overview,
		movie.Poster,
		movie.Backdrop,
		movie.Rating,
		movie.Year,
		domain.GenreStrings(movie.Genres),
		movie.Duration,
		movie.Director,
		nonNil(movie.Cast),
		movie.Language,
		movie.Country,
		movie.Featured,
		movie.Popularity,
		nonNil(movie.Tags),
		movie.Trailer,
		movie.IMDbID,
		movie.ID,
		movie.Version,
	).Scan(&movie.UpdatedAt, &movie.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEditConflict
		}

		return err
	}

	return nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int64) error {
	result, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// Reset empties the movies table and restarts its id sequence.
func (p *PostgresMovieRepository) Reset(ctx context.Context) error {
	_, err := p.db.Exec(ctx, `TRUNCATE movies RESTART IDENTITY`)
	return err
}

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	var (
		movie  domain.Movie
		genres []string
		imdbID *string
	)

	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Overview,
		&movie.Poster,
		&movie.Backdrop,
		&movie.Rating,
		&movie.Year,
		&genres,
		&movie.Duration,
		&movie.Director,
		&movie.Cast,
		&movie.Language,
		&movie.Country,
		&movie.Featured,
		&movie.Popularity,
		&movie.Tags,
		&movie.Trailer,
		&imdbID,
		&movie.CreatedAt,
		&movie.UpdatedAt,
		&movie.Version,
	)
	if err != nil {
		return nil, err
	}

	movie.Genres = domain.ToGenres(genres)
	if imdbID != nil {
		movie.IMDbID = *imdbID
	}

	return &movie, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
