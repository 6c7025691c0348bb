// Command tmdb-mock serves a fixed genre list and discover catalog shaped
// like the provider API, for local development and integration tests.
package main

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/filmz/filmz/internal/logger"
	"github.com/filmz/filmz/internal/tmdb"
)

//go:embed fixture.json
var defaultFixture []byte

type fixture struct {
	Genres []tmdb.Genre `json:"genres"`
	Movies []tmdb.Movie `json:"movies"`
}

type statusMessage struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}

func main() {
	var (
		app      = kingpin.New("tmdb-mock", "Serves a canned provider catalog.")
		port     = app.Flag("port", "port to listen on").Default("9099").String()
		data     = app.Flag("data", "path to a fixture file; the embedded fixture is used when empty").String()
		token    = app.Flag("token", "bearer token clients must send; empty disables the check").String()
		pageSize = app.Flag("page-size", "discover results per page").Default("20").Int()
		verbose  = app.Flag("log", "enable request logging").Bool()
	)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logger.New("tmdb-mock", "info", true)

	payload := defaultFixture
	if *data != "" {
		b, err := os.ReadFile(*data)
		if err != nil {
			log.Fatal().Err(err).Msg("read mock data")
		}
		payload = b
	}

	var fx fixture
	if err := json.Unmarshal(payload, &fx); err != nil {
		log.Fatal().Err(err).Msg("parse mock data")
	}

	r := chi.NewRouter()
	if *verbose {
		r.Use(middleware.Logger)
	}
	r.Mount("/", newRouter(fx, *token, *pageSize))

	addr := ":" + *port
	log.Info().Str("addr", addr).Int("genres", len(fx.Genres)).Int("movies", len(fx.Movies)).Msg("mock tmdb listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func newRouter(fx fixture, token string, pageSize int) http.Handler {
	if pageSize <= 0 {
		pageSize = 20
	}
	r := chi.NewRouter()
	if token != "" {
		r.Use(requireToken(token))
	}
	r.Get("/genre/movie/list", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"genres": fx.Genres})
	})
	r.Get("/discover/movie", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, discover(fx.Movies, r.URL.Query().Get("with_genres"), r.URL.Query().Get("page"), pageSize))
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, statusMessage{StatusCode: 34, StatusMessage: "The resource you requested could not be found."})
	})
	return r
}

func requireToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+token {
				writeJSON(w, http.StatusUnauthorized, statusMessage{StatusCode: 7, StatusMessage: "Invalid API key: You must be granted a valid key."})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// discover filters by the first genre in withGenres and slices out page.
func discover(movies []tmdb.Movie, withGenres, rawPage string, pageSize int) tmdb.MoviePage {
	var genre int64
	if first, _, _ := strings.Cut(strings.ReplaceAll(withGenres, "|", ","), ","); first != "" {
		genre, _ = strconv.ParseInt(strings.TrimSpace(first), 10, 64)
	}

	matched := make([]tmdb.Movie, 0, len(movies))
	for _, m := range movies {
		if genre == 0 || hasGenre(m, genre) {
			matched = append(matched, m)
		}
	}

	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = 1
	}
	totalPages := (len(matched) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	out := tmdb.MoviePage{Page: page, Results: []tmdb.Movie{}, TotalPages: totalPages, TotalResults: len(matched)}
	start := (page - 1) * pageSize
	if start < len(matched) {
		end := min(start+pageSize, len(matched))
		out.Results = matched[start:end]
	}
	return out
}

func hasGenre(m tmdb.Movie, id int64) bool {
	for _, g := range m.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json;charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
