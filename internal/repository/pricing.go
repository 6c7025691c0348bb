package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmz/filmz/internal/domain"
)

// PricingRepository persists the write-once price of each movie.
type PricingRepository struct {
	pool *pgxpool.Pool
}

// CreateIfAbsent inserts pricing for a movie unless one already exists.
// created is false when an existing row was left untouched.
func (r *PricingRepository) CreateIfAbsent(ctx context.Context, movieID int64, quote domain.PriceQuote) (bool, error) {
	currency := quote.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	tag, err := r.pool.Exec(ctx, `
        INSERT INTO pricing (movie_id, base_price, discount_percent, currency)
        VALUES ($1,$2,$3,$4)
        ON CONFLICT (movie_id) DO NOTHING
    `, movieID, quote.BasePrice, quote.DiscountPercent, currency)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// GetByMovieID fetches the pricing of a movie.
func (r *PricingRepository) GetByMovieID(ctx context.Context, movieID int64) (domain.Pricing, error) {
	const query = `
        SELECT id, movie_id, base_price, discount_percent, currency, created_at, updated_at
        FROM pricing
        WHERE movie_id = $1
    `
	var p domain.Pricing
	err := r.pool.QueryRow(ctx, query, movieID).Scan(
		&p.ID,
		&p.MovieID,
		&p.BasePrice,
		&p.DiscountPercent,
		&p.Currency,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return domain.Pricing{}, notFound(err)
	}
	return p, nil
}
