package mocks

import (
	"context"

	"github.com/metinatakli/moviemate/internal/domain"
)

type MockFavoriteRepo struct {
	domain.FavoriteRepository
	GetAllByUserFunc func(ctx context.Context, userID int) ([]*domain.Favorite, error)
	AddFunc          func(ctx context.Context, favorite *domain.Favorite) error
	RemoveFunc       func(ctx context.Context, userID int, imdbID string) error
}

func (m *MockFavoriteRepo) GetAllByUser(ctx context.Context, userID int) ([]*domain.Favorite, error) {
	return m.GetAllByUserFunc(ctx, userID)
}

func (m *MockFavoriteRepo) Add(ctx context.Context, favorite *domain.Favorite) error {
	return m.AddFunc(ctx, favorite)
}

func (m *MockFavoriteRepo) Remove(ctx context.Context, userID int, imdbID string) error {
	return m.RemoveFunc(ctx, userID, imdbID)
}
