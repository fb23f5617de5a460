package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Favorite is a movie a user bookmarked. Favorites reference provider titles
// by IMDb id so they survive catalog reseeds.
type Favorite struct {
	ID        uuid.UUID
	UserID    int
	IMDbID    string
	Title     string
	Poster    string
	Rating    string
	CreatedAt time.Time
}

func NewFavorite(userID int, imdbID, title, poster, rating string) *Favorite {
	return &Favorite{
		ID:     uuid.New(),
		UserID: userID,
		IMDbID: imdbID,
		Title:  title,
		Poster: poster,
		Rating: rating,
	}
}

func FavoriteIMDbIDs(favorites []*Favorite) []string {
	ids := make([]string, len(favorites))
	for i, f := range favorites {
		ids[i] = f.IMDbID
	}

	return ids
}

type FavoriteRepository interface {
	GetAllByUser(ctx context.Context, userID int) ([]*Favorite, error)
	Add(ctx context.Context, favorite *Favorite) error
	Remove(ctx context.Context, userID int, imdbID string) error
}
