package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/filmz/filmz/internal/auth"
	"github.com/filmz/filmz/internal/catalog"
	"github.com/filmz/filmz/internal/commerce"
	"github.com/filmz/filmz/internal/logger"
	"github.com/filmz/filmz/internal/validation"
)

const maxRequestBody = 1 << 20 // 1 MiB

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Error().Err(err).Msg("failed to encode response")
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

func (s *Server) respondDecodeError(w http.ResponseWriter, err error) {
	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError
	var maxBytesError *http.MaxBytesError
	switch {
	case errors.As(err, &syntaxError):
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Malformed JSON payload")
	case errors.As(err, &typeError):
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("Invalid value for field %s", typeError.Field))
	case errors.As(err, &maxBytesError):
		s.respondError(w, http.StatusRequestEntityTooLarge, "BAD_REQUEST", "Request body too large")
	case errors.Is(err, io.EOF):
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Request body cannot be empty")
	default:
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Unable to parse request body")
	}
}

// respondServiceError maps service errors onto status codes. Anything it
// does not recognise is logged and reported as a 500 with fallback.
func (s *Server) respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		s.respondJSON(w, http.StatusBadRequest, errorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid request",
			Details: verr.Fields,
		})
	case errors.Is(err, commerce.ErrInvalidPurchase):
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required fields")
	case errors.Is(err, auth.ErrInvalidCredentials):
		s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password")
	case errors.Is(err, catalog.ErrMovieNotFound), errors.Is(err, commerce.ErrMovieNotFound):
		s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
	case errors.Is(err, auth.ErrEmailTaken):
		s.respondError(w, http.StatusConflict, "CONFLICT", "User with this email already exists")
	case errors.Is(err, commerce.ErrAlreadyPurchased):
		s.respondError(w, http.StatusConflict, "CONFLICT", "Movie already purchased")
	default:
		logger.FromRequest(r).Error().Err(err).Str("path", r.URL.Path).Msg(fallback)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
