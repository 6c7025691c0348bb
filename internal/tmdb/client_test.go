package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
}

const discoverBody = `{
  "page": 2,
  "total_pages": 7,
  "total_results": 140,
  "results": [
    {"id": 550, "title": "Fight Club", "overview": "Soap.", "poster_path": "/p.jpg",
     "backdrop_path": null, "release_date": "1999-10-15", "vote_average": 8.4, "genre_ids": [18, 53]}
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, cache Cache) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPClient(Options{
		BaseURL:     srv.URL,
		AccessToken: "token-123",
		Timeout:     2 * time.Second,
		Cache:       cache,
		DiscoverTTL: time.Hour,
		GenresTTL:   24 * time.Hour,
	})
	require.NoError(t, err)
	return client
}

func TestDiscoverMovies_RequestShapeAndDecode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/movie", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "false", q.Get("include_adult"))
		assert.Equal(t, "false", q.Get("include_video"))
		assert.Equal(t, "en-US", q.Get("language"))
		assert.Equal(t, "popularity.desc", q.Get("sort_by"))
		assert.Equal(t, "18", q.Get("with_genres"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(discoverBody))
	}, nil)

	genre := int64(18)
	page, err := client.DiscoverMovies(context.Background(), DiscoverQuery{Page: 2, GenreID: &genre})
	require.NoError(t, err)

	assert.Equal(t, 7, page.TotalPages)
	require.Len(t, page.Results, 1)
	movie := page.Results[0]
	assert.Equal(t, int64(550), movie.ID)
	assert.Equal(t, []int64{18, 53}, movie.GenreIDs)
	require.NotNil(t, movie.PosterPath)
	assert.Equal(t, "/p.jpg", *movie.PosterPath)
	assert.Nil(t, movie.BackdropPath)
}

func TestDiscoverMovies_OmitsGenreWhenUnset(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["with_genres"]
		assert.False(t, present)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"page":1,"results":[],"total_pages":1,"total_results":0}`))
	}, nil)

	_, err := client.DiscoverMovies(context.Background(), DiscoverQuery{})
	require.NoError(t, err)
}

func TestGenres_Decode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genre/movie/list", r.URL.Path)
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		_, _ = w.Write([]byte(`{"genres":[{"id":28,"name":"Action"},{"id":35,"name":"Comedy"}]}`))
	}, nil)

	genres, err := client.Genres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Genre{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comedy"}}, genres)
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{
			name:   "not found",
			status: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNotFound)
			},
		},
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, http.StatusUnauthorized, statusErr.Status)
			},
		},
		{
			name:   "server error",
			status: http.StatusBadGateway,
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, "/discover/movie", statusErr.Path)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}, nil)
			_, err := client.DiscoverMovies(context.Background(), DiscoverQuery{Page: 1})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	}, nil)

	_, err := client.DiscoverMovies(context.Background(), DiscoverQuery{Page: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode tmdb response")
}

func TestCacheServesRepeatedRequests(t *testing.T) {
	var hits atomic.Int32
	cache := newMemoryCache()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(discoverBody))
	}, cache)

	for i := 0; i < 3; i++ {
		page, err := client.DiscoverMovies(context.Background(), DiscoverQuery{Page: 2})
		require.NoError(t, err)
		require.Len(t, page.Results, 1)
	}

	assert.Equal(t, int32(1), hits.Load())
	for _, ttl := range cache.ttls {
		assert.Equal(t, time.Hour, ttl)
	}
}

func TestCacheSkipsFailures(t *testing.T) {
	cache := newMemoryCache()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, cache)

	_, err := client.Genres(context.Background())
	require.Error(t, err)
	assert.Empty(t, cache.data)
}

func TestRateLimiterHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"genres":[]}`))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(Options{BaseURL: srv.URL, RequestsPerSecond: 0.001, Burst: 1})
	require.NoError(t, err)

	_, err = client.Genres(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.Genres(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestNewHTTPClientRejectsBadURL(t *testing.T) {
	_, err := NewHTTPClient(Options{BaseURL: "::not a url"})
	require.Error(t, err)
}
