package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmz/filmz/internal/domain"
)

// GenresRepository persists genres mirrored from the provider.
type GenresRepository struct {
	pool *pgxpool.Pool
}

const genreColumns = `id, tmdb_id, name, created_at, updated_at`

// Upsert creates the genre keyed by provider id or refreshes its name.
func (r *GenresRepository) Upsert(ctx context.Context, tmdbID int64, name string) (domain.Genre, error) {
	query := fmt.Sprintf(`
        INSERT INTO genres (tmdb_id, name)
        VALUES ($1,$2)
        ON CONFLICT (tmdb_id)
        DO UPDATE SET name = EXCLUDED.name, updated_at = now()
        RETURNING %s
    `, genreColumns)
	return scanGenre(r.pool.QueryRow(ctx, query, tmdbID, name))
}

// GetByTMDBID resolves a provider genre id to the local genre.
func (r *GenresRepository) GetByTMDBID(ctx context.Context, tmdbID int64) (domain.Genre, error) {
	query := fmt.Sprintf(`SELECT %s FROM genres WHERE tmdb_id = $1`, genreColumns)
	genre, err := scanGenre(r.pool.QueryRow(ctx, query, tmdbID))
	if err != nil {
		return domain.Genre{}, notFound(err)
	}
	return genre, nil
}

// GetByID fetches a local genre.
func (r *GenresRepository) GetByID(ctx context.Context, id int64) (domain.Genre, error) {
	query := fmt.Sprintf(`SELECT %s FROM genres WHERE id = $1`, genreColumns)
	genre, err := scanGenre(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return domain.Genre{}, notFound(err)
	}
	return genre, nil
}

// List returns all genres ordered by name.
func (r *GenresRepository) List(ctx context.Context) ([]domain.Genre, error) {
	query := fmt.Sprintf(`SELECT %s FROM genres ORDER BY name ASC`, genreColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := make([]domain.Genre, 0)
	for rows.Next() {
		genre, err := scanGenre(rows)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	return genres, rows.Err()
}

func scanGenre(row pgx.Row) (domain.Genre, error) {
	var g domain.Genre
	err := row.Scan(&g.ID, &g.TMDBID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}
