package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/filmz/filmz/internal/logger"
)

// movieID accepts both 42 and "42" in request bodies.
type movieID int64

func (m *movieID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*m = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*m = 0
			return nil
		}
		b = []byte(s)
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("movieId: %w", err)
	}
	*m = movieID(id)
	return nil
}

type favoriteRequest struct {
	MovieID movieID `json:"movieId"`
}

type favoriteStatusResponse struct {
	Liked bool `json:"liked"`
}

type favoriteToggleResponse struct {
	Message string `json:"message"`
	Liked   bool   `json:"liked"`
}

// handleCheckFavorite never fails for anonymous callers.
func (s *Server) handleCheckFavorite(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(r.Context())
	if !ok {
		s.respondJSON(w, http.StatusOK, favoriteStatusResponse{Liked: false})
		return
	}

	id, err := parseID(r.URL.Query().Get("movieId"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Movie ID is required")
		return
	}

	liked, err := s.favorites.IsFavorited(r.Context(), session.User.ID, id)
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Int64("movie_id", id).Msg("check favorite failed")
		liked = false
	}
	s.respondJSON(w, http.StatusOK, favoriteStatusResponse{Liked: liked})
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFrom(r.Context())

	var req favoriteRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if req.MovieID <= 0 {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Movie ID is required")
		return
	}

	liked, err := s.favorites.Toggle(r.Context(), session.User.ID, int64(req.MovieID))
	if err != nil {
		s.respondServiceError(w, r, err, "Failed to update favorites")
		return
	}

	msg := "Movie removed from favorites"
	if liked {
		msg = "Movie added to favorites"
	}
	s.respondJSON(w, http.StatusOK, favoriteToggleResponse{Message: msg, Liked: liked})
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFrom(r.Context())

	movies, err := s.favorites.List(r.Context(), session.User.ID)
	if err != nil {
		s.respondServiceError(w, r, err, "Failed to fetch favorites")
		return
	}
	resp := make([]movieResponse, 0, len(movies))
	for _, m := range movies {
		resp = append(resp, toMovieResponse(m))
	}
	s.respondJSON(w, http.StatusOK, resp)
}
