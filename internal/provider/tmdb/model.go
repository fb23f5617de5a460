package tmdb

import (
	"fmt"
	"strconv"

	"github.com/metinatakli/moviemate/internal/provider"
)

type moviePage struct {
	Page         int     `json:"page"`
	Results      []movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

type movie struct {
	ID                  int64     `json:"id"`
	IMDbID              string    `json:"imdb_id"`
	Title               string    `json:"title"`
	Overview            string    `json:"overview"`
	PosterPath          string    `json:"poster_path"`
	BackdropPath        string    `json:"backdrop_path"`
	VoteAverage         float64   `json:"vote_average"`
	VoteCount           int       `json:"vote_count"`
	ReleaseDate         string    `json:"release_date"`
	GenreIDs            []int     `json:"genre_ids"`
	Genres              []genre   `json:"genres"`
	Runtime             int       `json:"runtime"`
	OriginalLanguage    string    `json:"original_language"`
	ProductionCountries []country `json:"production_countries"`
	Popularity          float64   `json:"popularity"`
	Adult               bool      `json:"adult"`
	Credits             *credits  `json:"credits"`
	Videos              *videos   `json:"videos"`
}

type genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type country struct {
	Name string `json:"name"`
}

type credits struct {
	Cast []struct {
		Name string `json:"name"`
	} `json:"cast"`
	Crew []struct {
		Name string `json:"name"`
		Job  string `json:"job"`
	} `json:"crew"`
}

type videos struct {
	Results []struct {
		Key  string `json:"key"`
		Site string `json:"site"`
		Type string `json:"type"`
	} `json:"results"`
}

func transform(m movie) provider.Movie {
	out := provider.Movie{
		TMDbID:      m.ID,
		IMDbID:      m.IMDbID,
		Title:       m.Title,
		Overview:    m.Overview,
		Poster:      imageURL(m.PosterPath, "w500"),
		Backdrop:    imageURL(m.BackdropPath, "w1280"),
		Rating:      m.VoteAverage,
		Year:        releaseYear(m.ReleaseDate),
		Genres:      []string{},
		GenreIDs:    m.GenreIDs,
		Duration:    formatRuntime(m.Runtime),
		Director:    "N/A",
		Cast:        []string{},
		Language:    m.OriginalLanguage,
		Country:     "N/A",
		Featured:    m.Popularity > featuredPopularity,
		Popularity:  m.Popularity,
		ReleaseDate: m.ReleaseDate,
		Adult:       m.Adult,
		VoteCount:   m.VoteCount,
	}

	if out.Language == "" {
		out.Language = "en"
	}

	if len(m.ProductionCountries) > 0 && m.ProductionCountries[0].Name != "" {
		out.Country = m.ProductionCountries[0].Name
	}

	for _, g := range m.Genres {
		out.Genres = append(out.Genres, g.Name)
		if len(m.GenreIDs) == 0 {
			out.GenreIDs = append(out.GenreIDs, g.ID)
		}
	}

	return out
}

func imageURL(path, size string) string {
	if path == "" {
		return provider.PlaceholderImage
	}

	return ImageBaseURL + "/" + size + path
}

func formatRuntime(minutes int) string {
	if minutes <= 0 {
		return "N/A"
	}

	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// releaseYear reads the year of a YYYY-MM-DD date; 0 when unknown.
func releaseYear(date string) int {
	if len(date) < 4 {
		return 0
	}

	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}

	return year
}
