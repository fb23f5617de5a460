package omdb

import (
	"strconv"
	"strings"

	"github.com/metinatakli/moviemate/internal/provider"
)

type searchResponse struct {
	Response     string      `json:"Response"`
	Error        string      `json:"Error"`
	Search       []searchHit `json:"Search"`
	TotalResults string      `json:"totalResults"`
}

type searchHit struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDbID string `json:"imdbID"`
	Poster string `json:"Poster"`
}

type titleResponse struct {
	Response   string `json:"Response"`
	Error      string `json:"Error"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Awards     string `json:"Awards"`
	Poster     string `json:"Poster"`
	IMDbRating string `json:"imdbRating"`
	IMDbVotes  string `json:"imdbVotes"`
	IMDbID     string `json:"imdbID"`
	BoxOffice  string `json:"BoxOffice"`
	Production string `json:"Production"`
	Website    string `json:"Website"`
}

func (c *Client) transform(r titleResponse) provider.Movie {
	rating, _ := strconv.ParseFloat(r.IMDbRating, 64)
	votes, _ := strconv.Atoi(strings.ReplaceAll(r.IMDbVotes, ",", ""))
	poster := image(r.Poster)

	return provider.Movie{
		IMDbID:      r.IMDbID,
		Title:       r.Title,
		Overview:    orDefault(r.Plot, "No plot available"),
		Poster:      poster,
		Backdrop:    poster,
		Rating:      rating,
		Year:        c.year(r.Year),
		Genres:      splitList(r.Genre),
		Duration:    orDefault(r.Runtime, notAvailable),
		Director:    orDefault(r.Director, notAvailable),
		Cast:        splitList(r.Actors),
		Language:    orDefault(r.Language, "English"),
		Country:     orDefault(r.Country, notAvailable),
		Featured:    rating > featuredRating,
		Popularity:  rating * 10,
		ReleaseDate: orDefault(r.Released, r.Year),
		Adult:       r.Rated == "R" || r.Rated == "NC-17",
		VoteCount:   votes,
		Rated:       orDefault(r.Rated, notAvailable),
		Awards:      orDefault(r.Awards, notAvailable),
		BoxOffice:   orDefault(r.BoxOffice, notAvailable),
		Production:  orDefault(r.Production, notAvailable),
		Website:     present(r.Website),
	}
}

func (c *Client) transformSearchHit(h searchHit) provider.Movie {
	poster := image(h.Poster)

	return provider.Movie{
		IMDbID:      h.IMDbID,
		Title:       h.Title,
		Overview:    "Click to view details",
		Poster:      poster,
		Backdrop:    poster,
		Year:        c.year(h.Year),
		Genres:      []string{},
		Duration:    notAvailable,
		Director:    notAvailable,
		Cast:        []string{},
		Language:    "English",
		Country:     notAvailable,
		ReleaseDate: h.Year,
	}
}

// year parses the leading year of values like "2010" or "2010–2013",
// falling back to the current year.
func (c *Client) year(value string) int {
	if len(value) >= 4 {
		if y, err := strconv.Atoi(value[:4]); err == nil {
			return y
		}
	}

	return c.now().Year()
}

func image(poster string) string {
	if present(poster) == "" {
		return provider.PlaceholderImage
	}

	return poster
}

func splitList(value string) []string {
	if present(value) == "" {
		return []string{}
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// present maps OMDb's "N/A" marker to the empty string.
func present(value string) string {
	if value == notAvailable {
		return ""
	}

	return value
}

func orDefault(value, fallback string) string {
	if v := present(value); v != "" {
		return v
	}

	return fallback
}
