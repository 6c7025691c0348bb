package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/filmz/filmz/internal/domain"
	"github.com/filmz/filmz/internal/repository"
)

// BrowseQuery selects a page of the local catalog. GenreID is a local genre
// id; nil means every genre.
type BrowseQuery struct {
	Page    int
	GenreID *int64
}

// Listing is one page of the local catalog.
type Listing struct {
	Results      []domain.Movie
	Page         int
	TotalPages   int
	TotalResults int64
}

// Browse refreshes the matching provider page when sync-on-browse is on and
// then reads the page from the store. Sync problems never fail the listing.
func (s *Service) Browse(ctx context.Context, q BrowseQuery) (Listing, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}

	if s.syncOnBrowse {
		providerGenre, ok := s.providerGenre(ctx, q.GenreID)
		if ok {
			s.SyncMoviesPage(ctx, page, providerGenre)
		}
	}

	movies, total, err := s.store.ListMovies(ctx, q.GenreID, page, s.pageSize)
	if err != nil {
		return Listing{}, fmt.Errorf("list movies: %w", err)
	}
	for i := range movies {
		s.displayPricing(&movies[i])
	}

	totalPages := int((total + int64(s.pageSize) - 1) / int64(s.pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	return Listing{
		Results:      movies,
		Page:         page,
		TotalPages:   totalPages,
		TotalResults: total,
	}, nil
}

// providerGenre maps a local genre filter to the provider's id. ok is false
// when the filter names a genre the provider cannot be asked about.
func (s *Service) providerGenre(ctx context.Context, localID *int64) (*int64, bool) {
	if localID == nil {
		return nil, true
	}
	genre, err := s.store.GenreByID(ctx, *localID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn().Err(err).Int64("genre_id", *localID).Msg("catalog: genre lookup failed")
		}
		return nil, false
	}
	if genre.TMDBID == nil {
		return nil, false
	}
	return genre.TMDBID, true
}

// Movie returns a hydrated movie by local id.
func (s *Service) Movie(ctx context.Context, id int64) (domain.Movie, error) {
	movie, err := s.store.MovieByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Movie{}, ErrMovieNotFound
		}
		return domain.Movie{}, fmt.Errorf("get movie %d: %w", id, err)
	}
	s.displayPricing(&movie)
	return movie, nil
}

// Genres lists local genres by name.
func (s *Service) Genres(ctx context.Context) ([]domain.Genre, error) {
	genres, err := s.store.ListGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

// CountMovies reports how many movies are stored locally.
func (s *Service) CountMovies(ctx context.Context) (int64, error) {
	return s.store.CountMovies(ctx)
}

// displayPricing fills an unpersisted fallback price for movies that have
// none so callers always see a price.
func (s *Service) displayPricing(movie *domain.Movie) {
	if movie.Pricing != nil {
		return
	}
	quote := s.fallback.Quote(*movie)
	movie.Pricing = &domain.Pricing{
		MovieID:         movie.ID,
		BasePrice:       quote.BasePrice,
		DiscountPercent: quote.DiscountPercent,
		Currency:        quote.Currency,
	}
}
