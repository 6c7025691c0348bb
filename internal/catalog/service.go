// Package catalog mirrors the provider's genres and movies into the local
// store and serves the browsable catalog.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/filmz/filmz/internal/domain"
	"github.com/filmz/filmz/internal/logger"
	"github.com/filmz/filmz/internal/repository"
	"github.com/filmz/filmz/internal/tmdb"
)

// ErrMovieNotFound is returned for an unknown local movie id.
var ErrMovieNotFound = errors.New("catalog: movie not found")

// PlaceholderThumbnail is used when the provider has no poster.
const PlaceholderThumbnail = "/images/placeholder.png"

//go:generate mockgen -source=service.go -destination=../mock/catalog_store_mock.go -package=mock -mock_names=Store=MockCatalogStore

// Store is the persistence the catalog needs. Lookups report
// repository.ErrNotFound for missing rows.
type Store interface {
	UpsertGenre(ctx context.Context, tmdbID int64, name string) (domain.Genre, error)
	GenreByTMDBID(ctx context.Context, tmdbID int64) (domain.Genre, error)
	GenreByID(ctx context.Context, id int64) (domain.Genre, error)
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	UpsertMovie(ctx context.Context, params domain.MovieUpsert) (domain.Movie, bool, error)
	CreatePricingIfAbsent(ctx context.Context, movieID int64, quote domain.PriceQuote) (bool, error)
	MovieByID(ctx context.Context, id int64) (domain.Movie, error)
	ListMovies(ctx context.Context, genreID *int64, page, pageSize int) ([]domain.Movie, int64, error)
	MoviesWithoutPricing(ctx context.Context) ([]domain.Movie, error)
	CountMovies(ctx context.Context) (int64, error)
}

// Options tunes the service. Zero values fall back to the announce pricer,
// the provider's public image host and a page size of 20.
type Options struct {
	Pricer         Pricer
	FallbackPricer Pricer
	ImageBaseURL   string
	PageSize       int
	SyncOnBrowse   bool
	Logger         *logger.Logger
}

// Service implements catalog sync and browsing.
type Service struct {
	provider     tmdb.Client
	store        Store
	pricer       Pricer
	fallback     Pricer
	imageBaseURL string
	pageSize     int
	syncOnBrowse bool
	logger       *logger.Logger
}

// PageResult is the outcome of syncing one provider page.
type PageResult struct {
	Movies       []domain.Movie
	Page         int
	TotalPages   int
	TotalResults int
}

// NewService wires a catalog service.
func NewService(provider tmdb.Client, store Store, opts Options) *Service {
	s := &Service{
		provider:     provider,
		store:        store,
		pricer:       opts.Pricer,
		fallback:     opts.FallbackPricer,
		imageBaseURL: strings.TrimRight(opts.ImageBaseURL, "/"),
		pageSize:     opts.PageSize,
		syncOnBrowse: opts.SyncOnBrowse,
		logger:       opts.Logger,
	}
	if s.pricer == nil {
		s.pricer = AnnouncePricer()
	}
	if s.fallback == nil {
		s.fallback = AnnouncePricer()
	}
	if s.imageBaseURL == "" {
		s.imageBaseURL = "https://image.tmdb.org/t/p"
	}
	if s.pageSize <= 0 {
		s.pageSize = 20
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	return s
}

// SyncGenres upserts every provider genre by provider id. Genres missing
// upstream are kept. A fetch failure is returned; a failing row is logged
// and skipped.
func (s *Service) SyncGenres(ctx context.Context) ([]domain.Genre, error) {
	genres, err := s.provider.Genres(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch genres: %w", err)
	}

	synced := make([]domain.Genre, 0, len(genres))
	for _, g := range genres {
		genre, err := s.store.UpsertGenre(ctx, g.ID, g.Name)
		if err != nil {
			s.logger.Error().Err(err).Int64("tmdb_id", g.ID).Msg("catalog: upsert genre failed")
			continue
		}
		synced = append(synced, genre)
	}
	s.logger.Info().Int("count", len(synced)).Msg("catalog: genres synced")
	return synced, nil
}

// SyncMoviesPage mirrors one discover page into the store. Any fetch error
// degrades to an empty result; a failing movie is logged and skipped.
// Pricing is only ever created, never updated.
func (s *Service) SyncMoviesPage(ctx context.Context, page int, providerGenreID *int64) PageResult {
	if page <= 0 {
		page = 1
	}
	result, err := s.provider.DiscoverMovies(ctx, tmdb.DiscoverQuery{Page: page, GenreID: providerGenreID})
	if err != nil {
		s.logger.Error().Err(err).Int("page", page).Msg("catalog: discover failed")
		return PageResult{Movies: []domain.Movie{}, Page: page}
	}

	genres := make(map[int64]*int64)
	movies := make([]domain.Movie, 0, len(result.Results))
	for _, m := range result.Results {
		movie, err := s.syncMovie(ctx, m, genres)
		if err != nil {
			s.logger.Error().Err(err).Int64("tmdb_id", m.ID).Msg("catalog: sync movie failed")
			continue
		}
		movies = append(movies, movie)
	}

	return PageResult{
		Movies:       movies,
		Page:         result.Page,
		TotalPages:   result.TotalPages,
		TotalResults: result.TotalResults,
	}
}

func (s *Service) syncMovie(ctx context.Context, m tmdb.Movie, genres map[int64]*int64) (domain.Movie, error) {
	params := s.toUpsert(m, s.resolveGenre(ctx, m.GenreIDs, genres))

	movie, created, err := s.store.UpsertMovie(ctx, params)
	if err != nil {
		return domain.Movie{}, fmt.Errorf("upsert movie: %w", err)
	}
	if created {
		if _, err := s.store.CreatePricingIfAbsent(ctx, movie.ID, s.pricer.Quote(movie)); err != nil {
			return domain.Movie{}, fmt.Errorf("create pricing: %w", err)
		}
	}

	hydrated, err := s.store.MovieByID(ctx, movie.ID)
	if err != nil {
		return domain.Movie{}, fmt.Errorf("load movie: %w", err)
	}
	if hydrated.Pricing != nil {
		return hydrated, nil
	}

	s.logger.Warn().Int64("movie_id", movie.ID).Msg("catalog: movie without pricing, creating fallback")
	if _, err := s.store.CreatePricingIfAbsent(ctx, movie.ID, s.fallback.Quote(hydrated)); err != nil {
		return domain.Movie{}, fmt.Errorf("create fallback pricing: %w", err)
	}
	hydrated, err = s.store.MovieByID(ctx, movie.ID)
	if err != nil {
		return domain.Movie{}, fmt.Errorf("reload movie: %w", err)
	}
	return hydrated, nil
}

// resolveGenre maps the first provider genre id to a local id, memoizing
// lookups for the current page.
func (s *Service) resolveGenre(ctx context.Context, ids []int64, seen map[int64]*int64) *int64 {
	if len(ids) == 0 {
		return nil
	}
	primary := ids[0]
	if id, ok := seen[primary]; ok {
		return id
	}

	var local *int64
	genre, err := s.store.GenreByTMDBID(ctx, primary)
	switch {
	case err == nil:
		local = &genre.ID
	case errors.Is(err, repository.ErrNotFound):
	default:
		s.logger.Warn().Err(err).Int64("tmdb_genre_id", primary).Msg("catalog: genre lookup failed")
	}
	seen[primary] = local
	return local
}

func (s *Service) toUpsert(m tmdb.Movie, genreID *int64) domain.MovieUpsert {
	params := domain.MovieUpsert{
		TMDBID:       m.ID,
		Title:        m.Title,
		Description:  m.Overview,
		ThumbnailURL: PlaceholderThumbnail,
		Rating:       m.VoteAverage,
		GenreID:      genreID,
	}
	if m.PosterPath != nil && *m.PosterPath != "" {
		params.ThumbnailURL = s.imageBaseURL + "/w500" + *m.PosterPath
	}
	if m.BackdropPath != nil && *m.BackdropPath != "" {
		backdrop := s.imageBaseURL + "/original" + *m.BackdropPath
		params.BackdropURL = &backdrop
	}
	if m.ReleaseDate != "" {
		if released, err := time.Parse("2006-01-02", m.ReleaseDate); err == nil {
			params.ReleaseDate = &released
		}
	}
	return params
}

// BackfillPricing creates pricing with pricer for every movie lacking it and
// returns how many rows were created. Failing movies are skipped and
// reported together in the returned error.
func (s *Service) BackfillPricing(ctx context.Context, pricer Pricer) (int, error) {
	if pricer == nil {
		pricer = s.fallback
	}
	movies, err := s.store.MoviesWithoutPricing(ctx)
	if err != nil {
		return 0, fmt.Errorf("list unpriced movies: %w", err)
	}

	var (
		created int
		errs    []error
	)
	for _, movie := range movies {
		ok, err := s.store.CreatePricingIfAbsent(ctx, movie.ID, pricer.Quote(movie))
		if err != nil {
			s.logger.Error().Err(err).Int64("movie_id", movie.ID).Msg("catalog: backfill pricing failed")
			errs = append(errs, fmt.Errorf("movie %d: %w", movie.ID, err))
			continue
		}
		if ok {
			created++
		}
	}
	s.logger.Info().Int("created", created).Int("candidates", len(movies)).Msg("catalog: pricing backfilled")
	return created, errors.Join(errs...)
}
