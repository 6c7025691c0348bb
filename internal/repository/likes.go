package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmz/filmz/internal/domain"
)

// LikesRepository maintains the favorites set; (user_id, movie_id) is unique.
type LikesRepository struct {
	pool *pgxpool.Pool
}

// Toggle removes the like if present, otherwise adds it, and returns the
// resulting state. Neither branch reads before writing: a concurrent toggle
// that already inserted the pair surfaces as a conflict and is reported as
// liked.
func (r *LikesRepository) Toggle(ctx context.Context, userID, movieID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM user_likes WHERE user_id = $1 AND movie_id = $2`, userID, movieID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.pool.Exec(ctx, `
        INSERT INTO user_likes (user_id, movie_id)
        VALUES ($1,$2)
        ON CONFLICT (user_id, movie_id) DO NOTHING
    `, userID, movieID)
	if err != nil {
		return false, err
	}
	return true, nil
}

// Exists reports whether the user has liked the movie.
func (r *LikesRepository) Exists(ctx context.Context, userID, movieID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_likes WHERE user_id = $1 AND movie_id = $2)`,
		userID, movieID,
	).Scan(&exists)
	return exists, err
}

// ListMovies returns the user's liked movies, most recently liked first.
func (r *LikesRepository) ListMovies(ctx context.Context, userID int64) ([]domain.Movie, error) {
	query, args, err := hydratedMovies().
		Join("user_likes l ON l.movie_id = m.id").
		Where(sq.Eq{"l.user_id": userID}).
		OrderBy("l.created_at DESC", "l.id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}
	return queryHydratedMovies(ctx, r.pool, query, args...)
}
