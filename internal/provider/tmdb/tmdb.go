// Package tmdb adapts The Movie Database v3 API to provider.Movie.
package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/metinatakli/moviemate/internal/provider"
)

const (
	DefaultBaseURL = "https://api.themoviedb.org/3"
	ImageBaseURL   = "https://image.tmdb.org/t/p"
	APIKeyParam    = "api_key"

	featuredPopularity = 50
	maxCast            = 10
)

type Category string

const (
	Popular    Category = "popular"
	TopRated   Category = "top_rated"
	NowPlaying Category = "now_playing"
	Upcoming   Category = "upcoming"
)

type Relation string

const (
	Recommendations Relation = "recommendations"
	Similar         Relation = "similar"
)

type TimeWindow string

const (
	Day  TimeWindow = "day"
	Week TimeWindow = "week"
)

type Client struct {
	api *provider.Client
}

func New(api *provider.Client) *Client {
	return &Client{
		api: api,
	}
}

// List returns one page of a curated TMDB list.
func (c *Client) List(ctx context.Context, category Category, page int) (*provider.MovieList, error) {
	return c.page(ctx, "/movie/"+string(category), pageParams(page))
}

func (c *Client) Trending(ctx context.Context, window TimeWindow, page int) (*provider.MovieList, error) {
	if window != Day {
		window = Week
	}

	return c.page(ctx, "/trending/movie/"+string(window), pageParams(page))
}

func (c *Client) Search(ctx context.Context, query string, page int) (*provider.MovieList, error) {
	params := pageParams(page)
	params.Set("query", query)
	params.Set("include_adult", "false")

	return c.page(ctx, "/search/movie", params)
}

// ByGenre discovers movies tagged with a TMDB genre id, most popular first.
func (c *Client) ByGenre(ctx context.Context, genreID, page int) (*provider.MovieList, error) {
	params := pageParams(page)
	params.Set("with_genres", strconv.Itoa(genreID))
	params.Set("sort_by", "popularity.desc")

	return c.page(ctx, "/discover/movie", params)
}

func (c *Client) Related(ctx context.Context, movieID int, relation Relation, page int) (*provider.MovieList, error) {
	return c.page(ctx, fmt.Sprintf("/movie/%d/%s", movieID, relation), pageParams(page))
}

// Details returns a single title with its director, top-billed cast and
// YouTube trailer.
func (c *Client) Details(ctx context.Context, movieID int) (*provider.Movie, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,videos")

	var m movie
	err := c.api.GetJSON(ctx, fmt.Sprintf("/movie/%d", movieID), params, &m)
	if err != nil {
		return nil, err
	}

	out := transform(m)

	if m.Credits != nil {
		for _, member := range m.Credits.Crew {
			if member.Job == "Director" {
				out.Director = member.Name
				break
			}
		}

		cast := m.Credits.Cast
		if len(cast) > maxCast {
			cast = cast[:maxCast]
		}

		out.Cast = make([]string, len(cast))
		for i, actor := range cast {
			out.Cast[i] = actor.Name
		}
	}

	if m.Videos != nil {
		for _, v := range m.Videos.Results {
			if v.Type == "Trailer" && v.Site == "YouTube" {
				out.Trailer = "https://www.youtube.com/watch?v=" + v.Key
				break
			}
		}
	}

	return &out, nil
}

func (c *Client) Genres(ctx context.Context) ([]provider.Genre, error) {
	var resp struct {
		Genres []provider.Genre `json:"genres"`
	}

	err := c.api.GetJSON(ctx, "/genre/movie/list", nil, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Genres == nil {
		return []provider.Genre{}, nil
	}

	return resp.Genres, nil
}

func (c *Client) page(ctx context.Context, path string, params url.Values) (*provider.MovieList, error) {
	var resp moviePage

	err := c.api.GetJSON(ctx, path, params, &resp)
	if err != nil {
		return nil, err
	}

	movies := make([]provider.Movie, len(resp.Results))
	for i, m := range resp.Results {
		movies[i] = transform(m)
	}

	return &provider.MovieList{
		Movies:     movies,
		Pagination: provider.NewPagination(resp.Page, resp.TotalPages, resp.TotalResults),
	}, nil
}

func pageParams(page int) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(max(page, 1)))

	return params
}
