package httpserver

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/filmz/filmz/internal/catalog"
	"github.com/filmz/filmz/internal/domain"
	"github.com/filmz/filmz/internal/repository"
)

// memStore is an in-memory stand-in for the repository used by the auth and
// commerce services in handler tests.
type memStore struct {
	mu        sync.Mutex
	users     map[int64]domain.User
	movies    map[int64]domain.Movie
	likes     map[[2]int64]time.Time
	purchases []domain.UserPurchase
}

func newMemStore(movies ...domain.Movie) *memStore {
	m := &memStore{
		users:  map[int64]domain.User{},
		movies: map[int64]domain.Movie{},
		likes:  map[[2]int64]time.Time{},
	}
	for _, mv := range movies {
		m.movies[mv.ID] = mv
	}
	return m
}

func (m *memStore) CreateUser(_ context.Context, u domain.NewUser) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return domain.User{}, repository.ErrEmailExists
		}
	}
	now := time.Now().UTC()
	user := domain.User{
		ID:           int64(len(m.users) + 1),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *memStore) UserByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrNotFound
}

func (m *memStore) UserByID(_ context.Context, id int64) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return domain.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (m *memStore) MovieExists(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.movies[id]
	return ok, nil
}

func (m *memStore) ToggleLike(_ context.Context, userID, movieID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]int64{userID, movieID}
	if _, ok := m.likes[key]; ok {
		delete(m.likes, key)
		return false, nil
	}
	m.likes[key] = time.Now()
	return true, nil
}

func (m *memStore) LikeExists(_ context.Context, userID, movieID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.likes[[2]int64{userID, movieID}]
	return ok, nil
}

func (m *memStore) LikedMovies(_ context.Context, userID int64) ([]domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	type liked struct {
		movie domain.Movie
		at    time.Time
	}
	var all []liked
	for key, at := range m.likes {
		if key[0] == userID {
			all = append(all, liked{m.movies[key[1]], at})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].at.After(all[j].at) })
	out := make([]domain.Movie, 0, len(all))
	for _, l := range all {
		out = append(out, l.movie)
	}
	return out, nil
}

func (m *memStore) CreatePurchase(_ context.Context, p domain.NewPurchase, exclusive bool) (domain.UserPurchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if exclusive {
		for _, existing := range m.purchases {
			if existing.UserID == p.UserID && existing.MovieID == p.MovieID {
				return domain.UserPurchase{}, repository.ErrAlreadyPurchased
			}
		}
	}
	row := domain.UserPurchase{
		ID:            int64(len(m.purchases) + 1),
		UserID:        p.UserID,
		MovieID:       p.MovieID,
		PricePaid:     p.PricePaid,
		Currency:      p.Currency,
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		PurchaseDate:  p.PurchaseDate,
	}
	m.purchases = append(m.purchases, row)
	return row, nil
}

func (m *memStore) PurchaseExists(_ context.Context, userID, movieID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.purchases {
		if p.UserID == userID && p.MovieID == movieID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) PurchaseSummaries(_ context.Context, userID int64) ([]domain.PurchaseSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.PurchaseSummary
	for i := len(m.purchases) - 1; i >= 0; i-- {
		p := m.purchases[i]
		if p.UserID != userID {
			continue
		}
		mv := m.movies[p.MovieID]
		genre := "Unknown"
		if mv.Genre != nil {
			genre = mv.Genre.Name
		}
		out = append(out, domain.PurchaseSummary{
			PurchaseID:   p.ID,
			MovieID:      mv.ID,
			Title:        mv.Title,
			ThumbnailURL: mv.ThumbnailURL,
			Rating:       mv.Rating,
			GenreName:    genre,
			PurchaseDate: p.PurchaseDate,
			PricePaid:    p.PricePaid,
			Currency:     p.Currency,
		})
	}
	return out, nil
}

func (m *memStore) purchaseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.purchases)
}

type fakeCatalog struct {
	browse func(q catalog.BrowseQuery) (catalog.Listing, error)
	movie  func(id int64) (domain.Movie, error)
	genres []domain.Genre
	count  int64
	err    error
}

func (f *fakeCatalog) Browse(_ context.Context, q catalog.BrowseQuery) (catalog.Listing, error) {
	if f.browse == nil {
		return catalog.Listing{Page: q.Page, TotalPages: 1}, f.err
	}
	return f.browse(q)
}

func (f *fakeCatalog) Movie(_ context.Context, id int64) (domain.Movie, error) {
	if f.movie == nil {
		return domain.Movie{}, catalog.ErrMovieNotFound
	}
	return f.movie(id)
}

func (f *fakeCatalog) Genres(context.Context) ([]domain.Genre, error) {
	return f.genres, f.err
}

func (f *fakeCatalog) CountMovies(context.Context) (int64, error) {
	return f.count, f.err
}

type fakeHealth struct{ err error }

func (f fakeHealth) HealthCheck(context.Context) error { return f.err }
