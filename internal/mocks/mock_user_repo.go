package mocks

import (
	"context"

	"github.com/metinatakli/moviemate/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	CreateFunc            func(ctx context.Context, user *domain.User) error
	GetByEmailFunc        func(ctx context.Context, email string) (*domain.User, error)
	GetByIdFunc           func(ctx context.Context, id int) (*domain.User, error)
	UpdatePreferencesFunc func(ctx context.Context, user *domain.User) error
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *MockUserRepo) GetById(ctx context.Context, id int) (*domain.User, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockUserRepo) UpdatePreferences(ctx context.Context, user *domain.User) error {
	return m.UpdatePreferencesFunc(ctx, user)
}
