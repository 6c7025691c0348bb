package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmz/filmz/internal/domain"
)

// PurchasesRepository records completed purchases.
type PurchasesRepository struct {
	pool *pgxpool.Pool
}

const purchaseColumns = `id, user_id, movie_id, price_paid, currency, payment_method, transaction_id, purchase_date`

// Create records a purchase. With exclusive set the row is only written when
// the user has no earlier purchase of the movie; the partial unique index on
// exclusive rows turns a concurrent duplicate into ErrAlreadyPurchased too.
func (r *PurchasesRepository) Create(ctx context.Context, p domain.NewPurchase, exclusive bool) (domain.UserPurchase, error) {
	if !exclusive {
		query := fmt.Sprintf(`
            INSERT INTO user_purchases (user_id, movie_id, price_paid, currency, payment_method, transaction_id, purchase_date)
            VALUES ($1,$2,$3,$4,$5,$6,$7)
            RETURNING %s
        `, purchaseColumns)
		return scanPurchase(r.pool.QueryRow(ctx, query,
			p.UserID, p.MovieID, p.PricePaid, p.Currency, p.PaymentMethod, p.TransactionID, p.PurchaseDate))
	}

	query := fmt.Sprintf(`
        INSERT INTO user_purchases (user_id, movie_id, price_paid, currency, payment_method, transaction_id, purchase_date, exclusive)
        SELECT $1::bigint, $2::bigint, $3::numeric, $4::text, $5::text, $6::text, $7::timestamptz, true
        WHERE NOT EXISTS (
            SELECT 1 FROM user_purchases WHERE user_id = $1::bigint AND movie_id = $2::bigint
        )
        ON CONFLICT (user_id, movie_id) WHERE exclusive DO NOTHING
        RETURNING %s
    `, purchaseColumns)

	purchase, err := scanPurchase(r.pool.QueryRow(ctx, query,
		p.UserID, p.MovieID, p.PricePaid, p.Currency, p.PaymentMethod, p.TransactionID, p.PurchaseDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserPurchase{}, ErrAlreadyPurchased
		}
		return domain.UserPurchase{}, err
	}
	return purchase, nil
}

// Exists reports whether the user has purchased the movie at least once.
func (r *PurchasesRepository) Exists(ctx context.Context, userID, movieID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_purchases WHERE user_id = $1 AND movie_id = $2)`,
		userID, movieID,
	).Scan(&exists)
	return exists, err
}

// ListSummaries returns the user's purchases joined with movie and genre,
// newest first. Movies without a genre report "Unknown".
func (r *PurchasesRepository) ListSummaries(ctx context.Context, userID int64) ([]domain.PurchaseSummary, error) {
	const query = `
        SELECT up.id, m.id, m.title, m.thumbnail_url, m.rating,
               COALESCE(g.name, 'Unknown'), up.purchase_date, up.price_paid, up.currency
        FROM user_purchases up
        JOIN movies m ON m.id = up.movie_id
        LEFT JOIN genres g ON g.id = m.genre_id
        WHERE up.user_id = $1
        ORDER BY up.purchase_date DESC, up.id DESC
    `
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]domain.PurchaseSummary, 0)
	for rows.Next() {
		var s domain.PurchaseSummary
		if err := rows.Scan(
			&s.PurchaseID,
			&s.MovieID,
			&s.Title,
			&s.ThumbnailURL,
			&s.Rating,
			&s.GenreName,
			&s.PurchaseDate,
			&s.PricePaid,
			&s.Currency,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func scanPurchase(row pgx.Row) (domain.UserPurchase, error) {
	var p domain.UserPurchase
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.MovieID,
		&p.PricePaid,
		&p.Currency,
		&p.PaymentMethod,
		&p.TransactionID,
		&p.PurchaseDate,
	)
	return p, err
}
