// Package tmdb is a small client for the movie metadata provider's v3 API.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/filmz/filmz/internal/logger"
)

// ErrNotFound is returned when upstream answers 404.
var ErrNotFound = errors.New("tmdb: not found")

// StatusError reports a non-success upstream response.
type StatusError struct {
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: %s returned %d", e.Path, e.Status)
}

// Genre is a provider genre.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Movie is a provider movie as returned by discover.
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	PosterPath       *string `json:"poster_path"`
	BackdropPath     *string `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	GenreIDs         []int64 `json:"genre_ids"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
}

// MoviePage is one page of discover results.
type MoviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// DiscoverQuery selects a discover page, optionally restricted to a genre.
type DiscoverQuery struct {
	Page    int
	GenreID *int64
}

//go:generate mockgen -destination=../mock/tmdb_client_mock.go -package=mock -mock_names=Client=MockTMDBClient github.com/filmz/filmz/internal/tmdb Client

// Client defines the contract for querying the provider.
type Client interface {
	Genres(ctx context.Context) ([]Genre, error)
	DiscoverMovies(ctx context.Context, q DiscoverQuery) (MoviePage, error)
}

// Cache stores raw response bodies. Implementations must be safe for
// concurrent use; a miss or a backend error is reported as ok=false.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// Options configures HTTPClient.
type Options struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
	// RequestsPerSecond <= 0 disables client-side rate limiting.
	RequestsPerSecond float64
	Burst             int
	Cache             Cache
	DiscoverTTL       time.Duration
	GenresTTL         time.Duration
	Logger            *logger.Logger
}

// HTTPClient implements Client over resty.
type HTTPClient struct {
	client      *resty.Client
	limiter     *rate.Limiter
	cache       Cache
	discoverTTL time.Duration
	genresTTL   time.Duration
	logger      *logger.Logger
}

// NewHTTPClient constructs a provider client.
func NewHTTPClient(opts Options) (*HTTPClient, error) {
	base := strings.TrimRight(opts.BaseURL, "/")
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("parse tmdb url: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(base).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if opts.AccessToken != "" {
		cli.SetAuthToken(opts.AccessToken)
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return &HTTPClient{
		client:      cli,
		limiter:     limiter,
		cache:       opts.Cache,
		discoverTTL: opts.DiscoverTTL,
		genresTTL:   opts.GenresTTL,
		logger:      log,
	}, nil
}

// Genres fetches the flat movie genre list.
func (c *HTTPClient) Genres(ctx context.Context) ([]Genre, error) {
	var payload struct {
		Genres []Genre `json:"genres"`
	}
	params := map[string]string{"language": "en"}
	if err := c.get(ctx, "/genre/movie/list", params, c.genresTTL, &payload); err != nil {
		return nil, err
	}
	return payload.Genres, nil
}

// DiscoverMovies fetches one popularity-ordered discover page.
func (c *HTTPClient) DiscoverMovies(ctx context.Context, q DiscoverQuery) (MoviePage, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	params := map[string]string{
		"include_adult": "false",
		"include_video": "false",
		"language":      "en-US",
		"page":          strconv.Itoa(page),
		"sort_by":       "popularity.desc",
	}
	if q.GenreID != nil {
		params["with_genres"] = strconv.FormatInt(*q.GenreID, 10)
	}

	var result MoviePage
	if err := c.get(ctx, "/discover/movie", params, c.discoverTTL, &result); err != nil {
		return MoviePage{}, err
	}
	return result, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, params map[string]string, ttl time.Duration, dst interface{}) error {
	key := cacheKey(path, params)
	if c.cache != nil && ttl > 0 {
		if body, ok := c.cache.Get(ctx, key); ok {
			if err := json.Unmarshal(body, dst); err == nil {
				return nil
			}
			c.logger.Warn().Str("key", key).Msg("tmdb: discarding undecodable cache entry")
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("tmdb: rate limit wait: %w", err)
		}
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return fmt.Errorf("tmdb: request %s: %w", path, err)
	}

	switch status := resp.StatusCode(); {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status < 200 || status > 299:
		c.logger.Warn().Str("path", path).Int("status", resp.StatusCode()).Msg("tmdb: unexpected status")
		return &StatusError{Path: path, Status: resp.StatusCode()}
	}

	body := resp.Body()
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	if c.cache != nil && ttl > 0 {
		c.cache.Set(ctx, key, body, ttl)
	}
	return nil
}

// cacheKey is deterministic across map iteration orders.
func cacheKey(path string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("tmdb:")
	b.WriteString(path)
	for i, k := range keys {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}
