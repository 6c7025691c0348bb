package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmz/filmz/internal/store"
)

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("repository: not found")
	// ErrEmailExists is returned when a signup collides with users.email.
	ErrEmailExists = errors.New("repository: email already registered")
	// ErrAlreadyPurchased is returned when an exclusive purchase already exists.
	ErrAlreadyPurchased = errors.New("repository: movie already purchased")
)

// Repository aggregates all domain-specific repositories.
type Repository struct {
	Users     *UsersRepository
	Genres    *GenresRepository
	Movies    *MoviesRepository
	Pricing   *PricingRepository
	Likes     *LikesRepository
	Purchases *PurchasesRepository
}

// New constructs a Repository backed by the provided store.
func New(st *store.Store) *Repository {
	return NewWithPool(st.Pool())
}

// NewWithPool allows constructing repositories directly from a pgx pool.
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return &Repository{
		Users:     &UsersRepository{pool: pool},
		Genres:    &GenresRepository{pool: pool},
		Movies:    &MoviesRepository{pool: pool},
		Pricing:   &PricingRepository{pool: pool},
		Likes:     &LikesRepository{pool: pool},
		Purchases: &PurchasesRepository{pool: pool},
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
