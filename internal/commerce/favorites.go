// Package commerce implements favorites and purchases.
package commerce

import (
	"context"
	"errors"
	"fmt"

	"github.com/filmz/filmz/internal/domain"
	"github.com/filmz/filmz/internal/logger"
)

// ErrMovieNotFound is returned when the target movie does not exist.
var ErrMovieNotFound = errors.New("commerce: movie not found")

//go:generate mockgen -source=favorites.go -destination=../mock/favorite_store_mock.go -package=mock

// FavoriteStore persists likes. ToggleLike must be atomic per pair and
// report the resulting state.
type FavoriteStore interface {
	MovieExists(ctx context.Context, id int64) (bool, error)
	ToggleLike(ctx context.Context, userID, movieID int64) (bool, error)
	LikeExists(ctx context.Context, userID, movieID int64) (bool, error)
	LikedMovies(ctx context.Context, userID int64) ([]domain.Movie, error)
}

// Favorites maintains a user's like set.
type Favorites struct {
	store  FavoriteStore
	logger *logger.Logger
}

// NewFavorites wires the favorites service.
func NewFavorites(store FavoriteStore, log *logger.Logger) *Favorites {
	if log == nil {
		log = logger.Nop()
	}
	return &Favorites{store: store, logger: log}
}

// Toggle flips the like for (userID, movieID) and reports whether the movie
// is now liked.
func (f *Favorites) Toggle(ctx context.Context, userID, movieID int64) (bool, error) {
	exists, err := f.store.MovieExists(ctx, movieID)
	if err != nil {
		return false, fmt.Errorf("check movie: %w", err)
	}
	if !exists {
		return false, ErrMovieNotFound
	}

	liked, err := f.store.ToggleLike(ctx, userID, movieID)
	if err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}
	f.logger.Debug().Int64("user_id", userID).Int64("movie_id", movieID).Bool("liked", liked).Msg("commerce: favorite toggled")
	return liked, nil
}

// IsFavorited reports whether the user likes the movie. Anonymous callers
// (userID 0) are never favorited.
func (f *Favorites) IsFavorited(ctx context.Context, userID, movieID int64) (bool, error) {
	if userID <= 0 {
		return false, nil
	}
	liked, err := f.store.LikeExists(ctx, userID, movieID)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return liked, nil
}

// List returns the user's liked movies, newest like first.
func (f *Favorites) List(ctx context.Context, userID int64) ([]domain.Movie, error) {
	movies, err := f.store.LikedMovies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list liked movies: %w", err)
	}
	return movies, nil
}
