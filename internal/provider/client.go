package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
)

const maxResponseSize = 4 << 20

type Config struct {
	Name        string
	BaseURL     string
	APIKeyParam string
	APIKey      string
	Timeout     time.Duration
	CacheTTL    time.Duration
}

// Client performs GET requests against a metadata API. Responses are served
// from the cache when possible; live calls run through a circuit breaker.
type Client struct {
	name        string
	baseURL     string
	apiKeyParam string
	apiKey      string
	cacheTTL    time.Duration
	httpClient  *http.Client
	cache       Cache
	breaker     *gobreaker.CircuitBreaker[[]byte]
	logger      *slog.Logger
}

func NewClient(cfg Config, cache Cache, logger *slog.Logger) *Client {
	if cache == nil {
		cache = NopCache{}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}

	logger = logger.With("provider", cfg.Name)

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "from", from.String(), "to", to.String())
		},
		// not-found responses and caller cancellations do not count as failures
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled)
		},
	})

	return &Client{
		name:        cfg.Name,
		baseURL:     cfg.BaseURL,
		apiKeyParam: cfg.APIKeyParam,
		apiKey:      cfg.APIKey,
		cacheTTL:    ttl,
		httpClient:  &http.Client{Timeout: timeout},
		cache:       cache,
		breaker:     breaker,
		logger:      logger,
	}
}

func (c *Client) Name() string {
	return c.name
}

// Get returns the raw response body for path with the given query params.
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	key := c.cacheKey(path, params)

	body, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed", "key", key, "error", err)
	}
	if ok {
		return body, nil
	}

	body, err = c.breaker.Execute(func() ([]byte, error) {
		return c.fetch(ctx, path, params)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, c.name, err)
		}

		return nil, err
	}

	err = c.cache.Set(ctx, key, body, c.cacheTTL)
	if err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}

	return body, nil
}

// GetJSON decodes the response for path into dst.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, dst any) error {
	body, err := c.Get(ctx, path, params)
	if err != nil {
		return err
	}

	err = json.Unmarshal(body, dst)
	if err != nil {
		return fmt.Errorf("%s: decode %s: %w", c.name, path, err)
	}

	return nil
}

func (c *Client) fetch(ctx context.Context, path string, params url.Values) ([]byte, error) {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	if c.apiKey != "" {
		query.Set(c.apiKeyParam, c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request %s: %w", c.name, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%s: read %s: %w", c.name, path, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, fmt.Errorf("%s: %s returned status %d", c.name, path, resp.StatusCode)
	}

	return body, nil
}

// cacheKey leaves the API key out so rotating it does not invalidate entries.
func (c *Client) cacheKey(path string, params url.Values) string {
	return c.name + ":" + path + "?" + params.Encode()
}
