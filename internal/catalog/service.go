// Package catalog implements the movie catalog queries: filtered listing with
// pagination, free-text search, featured titles, genre discovery and
// genre-based recommendations.
//
// Every operation reads a snapshot through a domain.MovieReader and applies
// all filters, ordering and paging in memory. Readers may narrow the snapshot
// by pushing filters down to their store; since filtering is idempotent the
// result is the same either way.
package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/metinatakli/moviemate/internal/domain"
)

const (
	DefaultFeaturedLimit       = 6
	DefaultRecommendationLimit = 10
)

type Service struct {
	movies domain.MovieReader
}

func NewService(movies domain.MovieReader) *Service {
	return &Service{
		movies: movies,
	}
}

// ListMovies returns one page of the movies matching q, ordered by q's sort
// field and direction.
func (s *Service) ListMovies(ctx context.Context, q domain.MovieQuery) (*domain.MoviePage, error) {
	err := q.Validate()
	if err != nil {
		return nil, err
	}

	matched, err := s.fetch(ctx, q.MovieCriteria)
	if err != nil {
		return nil, err
	}

	sortMovies(matched, sortKey{field: q.SortField, direction: q.SortDirection})

	return paginate(matched, q.Page, q.Limit), nil
}

// Search matches term against title, overview, genres and cast and orders
// the hits by rating, then year, both descending.
func (s *Service) Search(ctx context.Context, term string, page, limit int) (*domain.MoviePage, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("%w: search term is required", domain.ErrInvalidArgument)
	}

	q := domain.NewMovieQuery()
	q.Search = term
	q.Page = page
	q.Limit = limit

	err := q.Validate()
	if err != nil {
		return nil, err
	}

	matched, err := s.fetch(ctx, q.MovieCriteria)
	if err != nil {
		return nil, err
	}

	sortMovies(matched, byRatingThenYear...)

	return paginate(matched, q.Page, q.Limit), nil
}

func (s *Service) Featured(ctx context.Context, limit int) ([]*domain.Movie, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1, got %d", domain.ErrInvalidArgument, limit)
	}

	featured := true
	matched, err := s.fetch(ctx, domain.MovieCriteria{Featured: &featured})
	if err != nil {
		return nil, err
	}

	sortMovies(matched, byRatingThenYear...)

	return cloneAll(head(matched, limit)), nil
}

// Genres returns the distinct genres used by at least one catalog entry, in
// alphabetical order.
func (s *Service) Genres(ctx context.Context) ([]domain.Genre, error) {
	movies, err := s.fetch(ctx, domain.MovieCriteria{})
	if err != nil {
		return nil, err
	}

	seen := make(map[domain.Genre]struct{})
	genres := []domain.Genre{}

	for _, m := range movies {
		for _, g := range m.Genres {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			genres = append(genres, g)
		}
	}

	slices.Sort(genres)

	return genres, nil
}

type RecommendRequest struct {
	FavoriteGenres []domain.Genre
	ExcludeIMDbIDs []string
	Limit          int
}

// Recommend picks the best rated movies in the user's favorite genres that
// are not already among their favorites. Without favorite genres every genre
// qualifies.
func (s *Service) Recommend(ctx context.Context, req RecommendRequest) ([]*domain.Movie, error) {
	if req.Limit < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1, got %d", domain.ErrInvalidArgument, req.Limit)
	}

	matched, err := s.fetch(ctx, domain.MovieCriteria{Genres: req.FavoriteGenres})
	if err != nil {
		return nil, err
	}

	candidates := matched[:0]
	for _, m := range matched {
		if m.IMDbID != "" && slices.Contains(req.ExcludeIMDbIDs, m.IMDbID) {
			continue
		}
		candidates = append(candidates, m)
	}

	sortMovies(candidates, byRatingThenYear...)

	return cloneAll(head(candidates, req.Limit)), nil
}

func (s *Service) fetch(ctx context.Context, c domain.MovieCriteria) ([]*domain.Movie, error) {
	movies, err := s.movies.FetchAll(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch movies: %w", domain.ErrDependencyUnavailable, err)
	}

	return filterMovies(movies, c), nil
}

func paginate(sorted []*domain.Movie, page, limit int) *domain.MoviePage {
	pagination := domain.NewPagination(len(sorted), page, limit)

	items := []*domain.Movie{}

	// compare pages before multiplying so huge page numbers cannot overflow
	if page <= pagination.TotalPages {
		start := (page - 1) * limit
		end := start + min(limit, len(sorted)-start)
		items = cloneAll(sorted[start:end])
	}

	return &domain.MoviePage{
		Items:      items,
		Pagination: pagination,
	}
}

func head(movies []*domain.Movie, n int) []*domain.Movie {
	if len(movies) > n {
		return movies[:n]
	}

	return movies
}

func cloneAll(movies []*domain.Movie) []*domain.Movie {
	clones := make([]*domain.Movie, len(movies))
	for i, m := range movies {
		clones[i] = m.Clone()
	}

	return clones
}
