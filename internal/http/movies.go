package httpserver

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/filmz/filmz/internal/catalog"
	"github.com/filmz/filmz/internal/domain"
)

type genreResponse struct {
	ID     int64  `json:"id"`
	TMDBID *int64 `json:"tmdbId"`
	Name   string `json:"name"`
}

type pricingResponse struct {
	ID              int64   `json:"id,omitempty"`
	MovieID         int64   `json:"movieId"`
	BasePrice       float64 `json:"basePrice"`
	DiscountPercent *int    `json:"discountPercent"`
	Currency        string  `json:"currency"`
	FinalPrice      float64 `json:"finalPrice"`
}

type movieResponse struct {
	ID           int64            `json:"id"`
	TMDBID       int64            `json:"tmdbId"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	ThumbnailURL string           `json:"thumbnailUrl"`
	BackdropURL  *string          `json:"backdropUrl"`
	ReleaseDate  *time.Time       `json:"releaseDate"`
	Rating       float64          `json:"rating"`
	GenreID      *int64           `json:"genreId"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	Genre        *genreResponse   `json:"genre"`
	Pricing      *pricingResponse `json:"pricing"`
}

type movieListResponse struct {
	Results      []movieResponse `json:"results"`
	Page         int             `json:"page"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int64           `json:"total_results"`
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	listing, err := s.catalog.Browse(r.Context(), parseBrowseQuery(r.URL.Query()))
	if err != nil {
		s.respondServiceError(w, r, err, "Failed to fetch movies")
		return
	}

	resp := movieListResponse{
		Results:      make([]movieResponse, 0, len(listing.Results)),
		Page:         listing.Page,
		TotalPages:   listing.TotalPages,
		TotalResults: listing.TotalResults,
	}
	for _, m := range listing.Results {
		resp.Results = append(resp.Results, toMovieResponse(m))
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// parseBrowseQuery reads page and genre. A bad page falls back to 1; a
// genre of "featured" or anything non-numeric means no filter.
func parseBrowseQuery(query url.Values) catalog.BrowseQuery {
	q := catalog.BrowseQuery{Page: 1}
	if val := strings.TrimSpace(query.Get("page")); val != "" {
		if page, err := strconv.Atoi(val); err == nil && page > 0 {
			q.Page = page
		}
	}
	if val := strings.TrimSpace(query.Get("genre")); val != "" && val != "featured" {
		if id, err := strconv.ParseInt(val, 10, 64); err == nil && id > 0 {
			q.GenreID = &id
		}
	}
	return q
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid movie ID")
		return
	}

	movie, err := s.catalog.Movie(r.Context(), id)
	if err != nil {
		s.respondServiceError(w, r, err, "Failed to fetch movie details")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := s.catalog.Genres(r.Context())
	if err != nil {
		s.respondServiceError(w, r, err, "Failed to fetch genres")
		return
	}
	resp := make([]genreResponse, 0, len(genres))
	for _, g := range genres {
		resp = append(resp, toGenreResponse(g))
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func toGenreResponse(g domain.Genre) genreResponse {
	return genreResponse{ID: g.ID, TMDBID: g.TMDBID, Name: g.Name}
}

func toMovieResponse(m domain.Movie) movieResponse {
	resp := movieResponse{
		ID:           m.ID,
		TMDBID:       m.TMDBID,
		Title:        m.Title,
		Description:  m.Description,
		ThumbnailURL: m.ThumbnailURL,
		BackdropURL:  m.BackdropURL,
		ReleaseDate:  m.ReleaseDate,
		Rating:       m.Rating,
		GenreID:      m.GenreID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Genre != nil {
		g := toGenreResponse(*m.Genre)
		resp.Genre = &g
	}
	if p := m.Pricing; p != nil {
		resp.Pricing = &pricingResponse{
			ID:              p.ID,
			MovieID:         m.ID,
			BasePrice:       p.BasePrice,
			DiscountPercent: p.DiscountPercent,
			Currency:        p.Currency,
			FinalPrice:      p.FinalPrice(),
		}
	}
	return resp
}
