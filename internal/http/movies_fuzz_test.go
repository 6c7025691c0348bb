package httpserver

import (
	"net/url"
	"testing"
)

func FuzzParseBrowseQuery(f *testing.F) {
	seeds := []string{
		"page=2&genre=28",
		"genre=featured",
		"page=abc",
		"page=-1&genre=0",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		values, err := url.ParseQuery(raw)
		if err != nil {
			return
		}
		q := parseBrowseQuery(values)
		if q.Page < 1 {
			t.Fatalf("page %d below 1 for %q", q.Page, raw)
		}
		if q.GenreID != nil && *q.GenreID <= 0 {
			t.Fatalf("non-positive genre %d for %q", *q.GenreID, raw)
		}
	})
}

func FuzzMovieIDUnmarshal(f *testing.F) {
	for _, seed := range []string{`42`, `"42"`, `""`, `null`, `"abc"`, `1.5`, `-3`} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		var id movieID
		_ = id.UnmarshalJSON([]byte(raw))
	})
}
