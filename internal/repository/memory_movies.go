package repository

import (
	"context"
	"sync"
	"time"

	"github.com/metinatakli/moviemate/internal/domain"
)

// MemoryMovieRepository keeps the catalog in a map. It serves local
// development (-catalog-backend=memory) and tests that need a real store
// without a database. Records go in and come out as copies.
type MemoryMovieRepository struct {
	mu     sync.RWMutex
	movies map[int64]*domain.Movie
	nextID int64
	now    func() time.Time
}

func NewMemoryMovieRepository(movies ...*domain.Movie) *MemoryMovieRepository {
	repo := &MemoryMovieRepository{
		movies: make(map[int64]*domain.Movie, len(movies)),
		now:    time.Now,
	}

	for _, m := range movies {
		c := m.Clone()
		if c.ID == 0 {
			repo.nextID++
			c.ID = repo.nextID
		}
		if c.ID > repo.nextID {
			repo.nextID = c.ID
		}
		if c.Version == 0 {
			c.Version = 1
		}
		repo.movies[c.ID] = c
	}

	return repo
}

// FetchAll returns every stored movie in map iteration order; filtering is
// left to the caller.
func (r *MemoryMovieRepository) FetchAll(ctx context.Context, criteria domain.MovieCriteria) ([]*domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*domain.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		movies = append(movies, m.Clone())
	}

	return movies, nil
}

func (r *MemoryMovieRepository) GetById(ctx context.Context, id int64) (*domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.movies[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return m.Clone(), nil
}

func (r *MemoryMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++

	now := r.now()
	movie.ID = r.nextID
	movie.CreatedAt = now
	movie.UpdatedAt = now
	movie.Version = 1

	r.movies[movie.ID] = movie.Clone()

	return nil
}

func (r *MemoryMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.movies[movie.ID]
	if !ok || current.Version != movie.Version {
		return domain.ErrEditConflict
	}

	movie.CreatedAt = current.CreatedAt
	movie.UpdatedAt = r.now()
	movie.Version++

	r.movies[movie.ID] = movie.Clone()

	return nil
}

func (r *MemoryMovieRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[id]; !ok {
		return domain.ErrRecordNotFound
	}

	delete(r.movies, id)

	return nil
}

// Reset drops every movie and restarts id assignment at 1.
func (r *MemoryMovieRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.movies = make(map[int64]*domain.Movie)
	r.nextID = 0

	return nil
}
