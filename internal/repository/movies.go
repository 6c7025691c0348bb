package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmz/filmz/internal/domain"
)

// MoviesRepository provides persistence helpers for movie entities.
type MoviesRepository struct {
	pool *pgxpool.Pool
}

const movieColumns = `
    id,
    tmdb_id,
    title,
    description,
    thumbnail_url,
    backdrop_url,
    release_date,
    rating,
    genre_id,
    created_at,
    updated_at
`

// hydratedMovieColumns selects a movie with its genre and pricing; the
// query must alias movies as m, genres as g and pricing as p.
var hydratedMovieColumns = []string{
	"m.id", "m.tmdb_id", "m.title", "m.description", "m.thumbnail_url", "m.backdrop_url",
	"m.release_date", "m.rating", "m.genre_id", "m.created_at", "m.updated_at",
	"g.id", "g.tmdb_id", "g.name", "g.created_at", "g.updated_at",
	"p.id", "p.base_price", "p.discount_percent", "p.currency", "p.created_at", "p.updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// MovieListFilters encapsulates filtering and pagination options.
type MovieListFilters struct {
	GenreID  *int64
	Page     int
	PageSize int
}

// MovieListResult returns one page plus the total row count for the filter.
type MovieListResult struct {
	Items      []domain.Movie
	TotalCount int64
}

// Upsert creates the movie keyed by provider id or refreshes its mutable
// fields. inserted reports whether a new row was created.
func (r *MoviesRepository) Upsert(ctx context.Context, params domain.MovieUpsert) (domain.Movie, bool, error) {
	query := fmt.Sprintf(`
        INSERT INTO movies (tmdb_id, title, description, thumbnail_url, backdrop_url, release_date, rating, genre_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        ON CONFLICT (tmdb_id)
        DO UPDATE SET
            title = EXCLUDED.title,
            description = EXCLUDED.description,
            thumbnail_url = EXCLUDED.thumbnail_url,
            backdrop_url = EXCLUDED.backdrop_url,
            release_date = EXCLUDED.release_date,
            rating = EXCLUDED.rating,
            genre_id = EXCLUDED.genre_id,
            updated_at = now()
        RETURNING %s, (xmax = 0) AS inserted
    `, movieColumns)

	var (
		movie    domain.Movie
		inserted bool
	)
	err := r.pool.QueryRow(ctx, query,
		params.TMDBID,
		params.Title,
		params.Description,
		params.ThumbnailURL,
		params.BackdropURL,
		params.ReleaseDate,
		params.Rating,
		params.GenreID,
	).Scan(
		&movie.ID,
		&movie.TMDBID,
		&movie.Title,
		&movie.Description,
		&movie.ThumbnailURL,
		&movie.BackdropURL,
		&movie.ReleaseDate,
		&movie.Rating,
		&movie.GenreID,
		&movie.CreatedAt,
		&movie.UpdatedAt,
		&inserted,
	)
	if err != nil {
		return domain.Movie{}, false, err
	}
	return movie, inserted, nil
}

// GetByID fetches a movie with its genre and pricing.
func (r *MoviesRepository) GetByID(ctx context.Context, id int64) (domain.Movie, error) {
	query, args, err := hydratedMovies().Where(sq.Eq{"m.id": id}).ToSql()
	if err != nil {
		return domain.Movie{}, err
	}
	movie, err := scanHydratedMovie(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Movie{}, notFound(err)
	}
	return movie, nil
}

// Exists reports whether a movie row with id exists.
func (r *MoviesRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM movies WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// Count returns the number of catalog rows.
func (r *MoviesRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&n)
	return n, err
}

// List returns one page of movies, newest id first.
func (r *MoviesRepository) List(ctx context.Context, filters MovieListFilters) (MovieListResult, error) {
	if filters.PageSize <= 0 {
		filters.PageSize = 20
	} else if filters.PageSize > 100 {
		filters.PageSize = 100
	}
	if filters.Page <= 0 {
		filters.Page = 1
	}

	selectQ := hydratedMovies()
	countQ := psql.Select("COUNT(*)").From("movies m")
	if filters.GenreID != nil {
		selectQ = selectQ.Where(sq.Eq{"m.genre_id": *filters.GenreID})
		countQ = countQ.Where(sq.Eq{"m.genre_id": *filters.GenreID})
	}
	selectQ = selectQ.
		OrderBy("m.id DESC").
		Limit(uint64(filters.PageSize)).
		Offset(uint64((filters.Page - 1) * filters.PageSize))

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return MovieListResult{}, err
	}
	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return MovieListResult{}, err
	}

	query, args, err := selectQ.ToSql()
	if err != nil {
		return MovieListResult{}, err
	}
	items, err := r.queryHydrated(ctx, query, args...)
	if err != nil {
		return MovieListResult{}, err
	}
	return MovieListResult{Items: items, TotalCount: total}, nil
}

// ListWithoutPricing returns movies that have no pricing row yet.
func (r *MoviesRepository) ListWithoutPricing(ctx context.Context) ([]domain.Movie, error) {
	query, args, err := hydratedMovies().Where(sq.Eq{"p.id": nil}).OrderBy("m.id ASC").ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryHydrated(ctx, query, args...)
}

func (r *MoviesRepository) queryHydrated(ctx context.Context, query string, args ...interface{}) ([]domain.Movie, error) {
	return queryHydratedMovies(ctx, r.pool, query, args...)
}

func queryHydratedMovies(ctx context.Context, pool *pgxpool.Pool, query string, args ...interface{}) ([]domain.Movie, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Movie, 0)
	for rows.Next() {
		movie, err := scanHydratedMovie(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func hydratedMovies() sq.SelectBuilder {
	return psql.Select(hydratedMovieColumns...).
		From("movies m").
		LeftJoin("genres g ON g.id = m.genre_id").
		LeftJoin("pricing p ON p.movie_id = m.id")
}

func scanHydratedMovie(row pgx.Row) (domain.Movie, error) {
	var (
		movie domain.Movie

		genreID        *int64
		genreTMDBID    *int64
		genreName      *string
		genreCreatedAt *time.Time
		genreUpdatedAt *time.Time

		pricingID        *int64
		basePrice        *float64
		discountPercent  *int
		currency         *string
		pricingCreatedAt *time.Time
		pricingUpdatedAt *time.Time
	)

	err := row.Scan(
		&movie.ID,
		&movie.TMDBID,
		&movie.Title,
		&movie.Description,
		&movie.ThumbnailURL,
		&movie.BackdropURL,
		&movie.ReleaseDate,
		&movie.Rating,
		&movie.GenreID,
		&movie.CreatedAt,
		&movie.UpdatedAt,
		&genreID,
		&genreTMDBID,
		&genreName,
		&genreCreatedAt,
		&genreUpdatedAt,
		&pricingID,
		&basePrice,
		&discountPercent,
		&currency,
		&pricingCreatedAt,
		&pricingUpdatedAt,
	)
	if err != nil {
		return domain.Movie{}, err
	}

	if genreID != nil {
		movie.Genre = &domain.Genre{
			ID:        *genreID,
			TMDBID:    genreTMDBID,
			Name:      deref(genreName),
			CreatedAt: deref(genreCreatedAt),
			UpdatedAt: deref(genreUpdatedAt),
		}
	}
	if pricingID != nil {
		movie.Pricing = &domain.Pricing{
			ID:              *pricingID,
			MovieID:         movie.ID,
			BasePrice:       deref(basePrice),
			DiscountPercent: discountPercent,
			Currency:        deref(currency),
			CreatedAt:       deref(pricingCreatedAt),
			UpdatedAt:       deref(pricingUpdatedAt),
		}
	}
	return movie, nil
}

func deref[T any](ptr *T) T {
	var zero T
	if ptr == nil {
		return zero
	}
	return *ptr
}
