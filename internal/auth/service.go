// Package auth handles accounts and the signed session credential.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/filmz/filmz/internal/domain"
	"github.com/filmz/filmz/internal/logger"
	"github.com/filmz/filmz/internal/repository"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	// ErrEmailTaken is returned when signing up with a registered email.
	ErrEmailTaken = errors.New("auth: email already registered")
)

//go:generate mockgen -source=service.go -destination=../mock/user_store_mock.go -package=mock

// UserStore persists accounts. Lookups report repository.ErrNotFound and
// CreateUser reports repository.ErrEmailExists on a duplicate email.
type UserStore interface {
	CreateUser(ctx context.Context, u domain.NewUser) (domain.User, error)
	UserByEmail(ctx context.Context, email string) (domain.User, error)
	UserByID(ctx context.Context, id int64) (domain.User, error)
}

// SignupInput is a validated signup request.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Session is a resolved credential.
type Session struct {
	User   domain.User
	Claims *Claims
}

// Service implements signup, login and session resolution.
type Service struct {
	users      UserStore
	tokens     *TokenIssuer
	bcryptCost int
	logger     *logger.Logger
}

// NewService wires the auth service.
func NewService(users UserStore, tokens *TokenIssuer, bcryptCost int, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{users: users, tokens: tokens, bcryptCost: bcryptCost, logger: log}
}

// TokenLifetime is the validity of tokens issued by the service; the HTTP
// layer uses it as the cookie max-age.
func (s *Service) TokenLifetime() time.Duration {
	return s.tokens.Lifetime()
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates an account and returns it with a fresh token.
func (s *Service) Signup(ctx context.Context, in SignupInput) (domain.User, string, error) {
	hash, err := HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return domain.User{}, "", err
	}

	user, err := s.users.CreateUser(ctx, domain.NewUser{
		Email:        NormalizeEmail(in.Email),
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return domain.User{}, "", ErrEmailTaken
		}
		return domain.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return domain.User{}, "", err
	}
	s.logger.Info().Int64("user_id", user.ID).Msg("auth: user signed up")
	return user, token, nil
}

// Login checks the password and returns the user with a fresh token.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.users.UserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", fmt.Errorf("find user: %w", err)
	}
	if !VerifyPassword(user.PasswordHash, password) {
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// IssueToken signs a session token for user.
func (s *Service) IssueToken(user domain.User) (string, error) {
	return s.tokens.Issue(user)
}

// ResolveSession maps a raw credential to its user. Any failure, including a
// missing credential or a deleted user, yields ok=false.
func (s *Service) ResolveSession(ctx context.Context, raw string) (Session, bool) {
	if raw == "" {
		return Session{}, false
	}
	claims, err := s.tokens.Verify(raw)
	if err != nil {
		s.logger.Debug().Err(err).Msg("auth: rejected credential")
		return Session{}, false
	}
	user, err := s.users.UserByID(ctx, claims.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().Err(err).Int64("user_id", claims.UserID).Msg("auth: load session user failed")
		}
		return Session{}, false
	}
	return Session{User: user, Claims: claims}, true
}
