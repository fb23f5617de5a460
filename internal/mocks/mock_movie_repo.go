package mocks

import (
	"context"

	"github.com/metinatakli/moviemate/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	FetchAllFunc func(ctx context.Context, criteria domain.MovieCriteria) ([]*domain.Movie, error)
	GetByIdFunc  func(ctx context.Context, id int64) (*domain.Movie, error)
	CreateFunc   func(ctx context.Context, movie *domain.Movie) error
	UpdateFunc   func(ctx context.Context, movie *domain.Movie) error
	DeleteFunc   func(ctx context.Context, id int64) error
	ResetFunc    func(ctx context.Context) error
}

func (m *MockMovieRepo) FetchAll(ctx context.Context, criteria domain.MovieCriteria) ([]*domain.Movie, error) {
	return m.FetchAllFunc(ctx, criteria)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int64) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *domain.Movie) error {
	return m.UpdateFunc(ctx, movie)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

func (m *MockMovieRepo) Reset(ctx context.Context) error {
	if m.ResetFunc == nil {
		return nil
	}
	return m.ResetFunc(ctx)
}
