package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/filmz/filmz/internal/auth"
	"github.com/filmz/filmz/internal/domain"
)

// Cookies cleared on logout alongside the session cookie.
var legacyCookies = []string{"next-auth.csrf-token", "next-auth.callback-url"}

type signupRequest struct {
	FirstName       string `json:"firstname" validate:"required"`
	LastName        string `json:"lastname" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	req.Email = auth.NormalizeEmail(req.Email)
	if err := s.validator.Validate(req); err != nil {
		s.respondServiceError(w, r, err, "Something went wrong")
		return
	}

	user, token, err := s.auth.Signup(r.Context(), auth.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		s.respondServiceError(w, r, err, "Something went wrong")
		return
	}

	s.setSessionCookie(w, token)
	s.respondJSON(w, http.StatusOK, authResponse{User: toUserResponse(user), Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Email and password are required")
		return
	}

	user, token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondServiceError(w, r, err, "Authentication failed")
		return
	}

	s.setSessionCookie(w, token)
	s.respondJSON(w, http.StatusOK, authResponse{User: toUserResponse(user), Token: token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	for _, name := range append([]string{s.cookieName()}, legacyCookies...) {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
		})
	}
	s.respondJSON(w, http.StatusOK, messageResponse{Message: "Logged out"})
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.auth.TokenLifetime().Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) cookieName() string {
	if s.cfg.Auth.CookieName == "" {
		return "session"
	}
	return s.cfg.Auth.CookieName
}
