package tmdb

import (
	"context"
	"os"
	"testing"
	"time"
)

// TestHTTPClientSmoke checks the client against a live provider or the
// local tmdb-mock when TMDB_API_URL is set.
func TestHTTPClientSmoke(t *testing.T) {
	baseURL := os.Getenv("TMDB_API_URL")
	if baseURL == "" {
		t.Skip("TMDB_API_URL not provided")
	}
	client, err := NewHTTPClient(Options{
		BaseURL:     baseURL,
		AccessToken: os.Getenv("TMDB_ACCESS_TOKEN"),
		Timeout:     3 * time.Second,
	})
	if err != nil {
		t.Fatalf("create http client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	page, err := client.DiscoverMovies(ctx, DiscoverQuery{Page: 1})
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(page.Results) == 0 || page.TotalPages == 0 {
		t.Fatalf("unexpected discover payload: %+v", page)
	}
}
