package mocks

import (
	"context"

	"github.com/metinatakli/moviemate/internal/provider"
	"github.com/metinatakli/moviemate/internal/provider/tmdb"
)

type MockTMDBClient struct {
	ListFunc     func(ctx context.Context, category tmdb.Category, page int) (*provider.MovieList, error)
	TrendingFunc func(ctx context.Context, window tmdb.TimeWindow, page int) (*provider.MovieList, error)
	SearchFunc   func(ctx context.Context, query string, page int) (*provider.MovieList, error)
	ByGenreFunc  func(ctx context.Context, genreID, page int) (*provider.MovieList, error)
	RelatedFunc  func(ctx context.Context, movieID int, relation tmdb.Relation, page int) (*provider.MovieList, error)
	DetailsFunc  func(ctx context.Context, movieID int) (*provider.Movie, error)
	GenresFunc   func(ctx context.Context) ([]provider.Genre, error)
}

func (m *MockTMDBClient) List(ctx context.Context, category tmdb.Category, page int) (*provider.MovieList, error) {
	return m.ListFunc(ctx, category, page)
}

func (m *MockTMDBClient) Trending(ctx context.Context, window tmdb.TimeWindow, page int) (*provider.MovieList, error) {
	return m.TrendingFunc(ctx, window, page)
}

func (m *MockTMDBClient) Search(ctx context.Context, query string, page int) (*provider.MovieList, error) {
	return m.SearchFunc(ctx, query, page)
}

func (m *MockTMDBClient) ByGenre(ctx context.Context, genreID, page int) (*provider.MovieList, error) {
	return m.ByGenreFunc(ctx, genreID, page)
}

func (m *MockTMDBClient) Related(ctx context.Context, movieID int, relation tmdb.Relation, page int) (*provider.MovieList, error) {
	return m.RelatedFunc(ctx, movieID, relation, page)
}

func (m *MockTMDBClient) Details(ctx context.Context, movieID int) (*provider.Movie, error) {
	return m.DetailsFunc(ctx, movieID)
}

func (m *MockTMDBClient) Genres(ctx context.Context) ([]provider.Genre, error) {
	return m.GenresFunc(ctx)
}
