package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmz/filmz/internal/domain"
)

// UsersRepository persists storefront accounts.
type UsersRepository struct {
	pool *pgxpool.Pool
}

const userColumns = `id, email, password_hash, first_name, last_name, created_at, updated_at`

// Create inserts a user. A duplicate email yields ErrEmailExists.
func (r *UsersRepository) Create(ctx context.Context, u domain.NewUser) (domain.User, error) {
	query := fmt.Sprintf(`
        INSERT INTO users (email, password_hash, first_name, last_name)
        VALUES ($1,$2,$3,$4)
        RETURNING %s
    `, userColumns)

	user, err := scanUser(r.pool.QueryRow(ctx, query, u.Email, u.PasswordHash, u.FirstName, u.LastName))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, ErrEmailExists
		}
		return domain.User{}, err
	}
	return user, nil
}

// GetByEmail looks a user up by exact email.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		return domain.User{}, notFound(err)
	}
	return user, nil
}

// GetByID looks a user up by id.
func (r *UsersRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return domain.User{}, notFound(err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
