package mocks

import (
	"context"

	"github.com/metinatakli/moviemate/internal/provider"
)

type MockOMDbClient struct {
	SearchFunc  func(ctx context.Context, query string, page int) (*provider.MovieList, error)
	DetailsFunc func(ctx context.Context, imdbID string) (*provider.Movie, error)
	ByTitleFunc func(ctx context.Context, title string) (*provider.Movie, error)
}

func (m *MockOMDbClient) Search(ctx context.Context, query string, page int) (*provider.MovieList, error) {
	return m.SearchFunc(ctx, query, page)
}

func (m *MockOMDbClient) Details(ctx context.Context, imdbID string) (*provider.Movie, error) {
	return m.DetailsFunc(ctx, imdbID)
}

func (m *MockOMDbClient) ByTitle(ctx context.Context, title string) (*provider.Movie, error) {
	return m.ByTitleFunc(ctx, title)
}
