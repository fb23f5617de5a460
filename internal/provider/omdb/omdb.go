// Package omdb adapts the Open Movie Database API to provider.Movie.
package omdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/metinatakli/moviemate/internal/provider"
)

const (
	DefaultBaseURL = "https://www.omdbapi.com"
	APIKeyParam    = "apikey"

	resultsPerPage = 10
	featuredRating = 7.5
	notAvailable   = "N/A"
	notFoundError  = "Movie not found!"
)

type Client struct {
	api *provider.Client
	now func() time.Time
}

func New(api *provider.Client) *Client {
	return &Client{
		api: api,
		now: time.Now,
	}
}

// Search returns one page of title matches. OMDb search hits carry only
// title, year, id and poster; the remaining fields keep their defaults.
func (c *Client) Search(ctx context.Context, query string, page int) (*provider.MovieList, error) {
	page = max(page, 1)

	params := url.Values{}
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("type", "movie")

	var resp searchResponse
	err := c.api.GetJSON(ctx, "/", params, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Response == "False" {
		if resp.Error == notFoundError {
			return &provider.MovieList{
				Movies:     []provider.Movie{},
				Pagination: provider.NewPagination(page, 0, 0),
			}, nil
		}

		return nil, fmt.Errorf("omdb: search: %s", resp.Error)
	}

	total, _ := strconv.Atoi(resp.TotalResults)

	movies := make([]provider.Movie, len(resp.Search))
	for i, hit := range resp.Search {
		movies[i] = c.transformSearchHit(hit)
	}

	return &provider.MovieList{
		Movies:     movies,
		Pagination: provider.NewPagination(page, provider.PagesFor(total, resultsPerPage), total),
	}, nil
}

func (c *Client) Details(ctx context.Context, imdbID string) (*provider.Movie, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("plot", "full")

	return c.lookup(ctx, params)
}

func (c *Client) ByTitle(ctx context.Context, title string) (*provider.Movie, error) {
	params := url.Values{}
	params.Set("t", title)
	params.Set("plot", "full")

	return c.lookup(ctx, params)
}

func (c *Client) lookup(ctx context.Context, params url.Values) (*provider.Movie, error) {
	var resp titleResponse

	err := c.api.GetJSON(ctx, "/", params, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Response == "False" {
		if resp.Error == notFoundError || strings.HasPrefix(resp.Error, "Incorrect IMDb ID") {
			return nil, provider.ErrNotFound
		}

		return nil, fmt.Errorf("omdb: lookup: %s", resp.Error)
	}

	m := c.transform(resp)

	return &m, nil
}
