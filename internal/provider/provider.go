// Package provider holds the pieces shared by the third-party movie metadata
// adapters: the resilient HTTP client, the response cache and the reshaped
// movie model both adapters return.
package provider

import (
	"errors"
	"math"
)

// PlaceholderImage is returned for titles without artwork.
const PlaceholderImage = "/placeholder.svg"

var (
	ErrNotFound    = errors.New("provider: resource not found")
	ErrUnavailable = errors.New("provider: service unavailable")
)

type Movie struct {
	TMDbID      int64    `json:"tmdbId,omitempty"`
	IMDbID      string   `json:"imdbId,omitempty"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	Poster      string   `json:"poster"`
	Backdrop    string   `json:"backdrop"`
	Rating      float64  `json:"rating"`
	Year        int      `json:"year"`
	Genres      []string `json:"genre"`
	GenreIDs    []int    `json:"genreIds,omitempty"`
	Duration    string   `json:"duration"`
	Director    string   `json:"director"`
	Cast        []string `json:"cast"`
	Language    string   `json:"language"`
	Country     string   `json:"country"`
	Featured    bool     `json:"featured"`
	Popularity  float64  `json:"popularity"`
	ReleaseDate string   `json:"releaseDate"`
	Adult       bool     `json:"adult"`
	VoteCount   int      `json:"voteCount"`
	Trailer     string   `json:"trailer,omitempty"`
	Rated       string   `json:"rated,omitempty"`
	Awards      string   `json:"awards,omitempty"`
	BoxOffice   string   `json:"boxOffice,omitempty"`
	Production  string   `json:"production,omitempty"`
	Website     string   `json:"website,omitempty"`
}

type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

func NewPagination(page, totalPages, totalItems int) Pagination {
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// PagesFor returns how many pages of size perPage hold total items.
func PagesFor(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}

	return int(math.Ceil(float64(total) / float64(perPage)))
}

type MovieList struct {
	Movies     []Movie    `json:"movies"`
	Pagination Pagination `json:"pagination"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
