package repository

import (
	"context"

	"github.com/filmz/filmz/internal/domain"
)

// The methods below flatten the per-entity repositories into the store
// interfaces consumed by the catalog, auth and commerce services.

func (r *Repository) CreateUser(ctx context.Context, u domain.NewUser) (domain.User, error) {
	return r.Users.Create(ctx, u)
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.Users.GetByEmail(ctx, email)
}

func (r *Repository) UserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.Users.GetByID(ctx, id)
}

func (r *Repository) UpsertGenre(ctx context.Context, tmdbID int64, name string) (domain.Genre, error) {
	return r.Genres.Upsert(ctx, tmdbID, name)
}

func (r *Repository) GenreByTMDBID(ctx context.Context, tmdbID int64) (domain.Genre, error) {
	return r.Genres.GetByTMDBID(ctx, tmdbID)
}

func (r *Repository) GenreByID(ctx context.Context, id int64) (domain.Genre, error) {
	return r.Genres.GetByID(ctx, id)
}

func (r *Repository) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	return r.Genres.List(ctx)
}

func (r *Repository) UpsertMovie(ctx context.Context, params domain.MovieUpsert) (domain.Movie, bool, error) {
	return r.Movies.Upsert(ctx, params)
}

func (r *Repository) MovieByID(ctx context.Context, id int64) (domain.Movie, error) {
	return r.Movies.GetByID(ctx, id)
}

func (r *Repository) MovieExists(ctx context.Context, id int64) (bool, error) {
	return r.Movies.Exists(ctx, id)
}

func (r *Repository) CountMovies(ctx context.Context) (int64, error) {
	return r.Movies.Count(ctx)
}

func (r *Repository) ListMovies(ctx context.Context, genreID *int64, page, pageSize int) ([]domain.Movie, int64, error) {
	res, err := r.Movies.List(ctx, MovieListFilters{GenreID: genreID, Page: page, PageSize: pageSize})
	if err != nil {
		return nil, 0, err
	}
	return res.Items, res.TotalCount, nil
}

func (r *Repository) MoviesWithoutPricing(ctx context.Context) ([]domain.Movie, error) {
	return r.Movies.ListWithoutPricing(ctx)
}

func (r *Repository) CreatePricingIfAbsent(ctx context.Context, movieID int64, quote domain.PriceQuote) (bool, error) {
	return r.Pricing.CreateIfAbsent(ctx, movieID, quote)
}

func (r *Repository) ToggleLike(ctx context.Context, userID, movieID int64) (bool, error) {
	return r.Likes.Toggle(ctx, userID, movieID)
}

func (r *Repository) LikeExists(ctx context.Context, userID, movieID int64) (bool, error) {
	return r.Likes.Exists(ctx, userID, movieID)
}

func (r *Repository) LikedMovies(ctx context.Context, userID int64) ([]domain.Movie, error) {
	return r.Likes.ListMovies(ctx, userID)
}

func (r *Repository) CreatePurchase(ctx context.Context, p domain.NewPurchase, exclusive bool) (domain.UserPurchase, error) {
	return r.Purchases.Create(ctx, p, exclusive)
}

func (r *Repository) PurchaseExists(ctx context.Context, userID, movieID int64) (bool, error) {
	return r.Purchases.Exists(ctx, userID, movieID)
}

func (r *Repository) PurchaseSummaries(ctx context.Context, userID int64) ([]domain.PurchaseSummary, error) {
	return r.Purchases.ListSummaries(ctx, userID)
}
