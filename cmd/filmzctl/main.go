// Command filmzctl runs operator tasks against the catalog database:
// schema migrations, provider catalog seeding, and pricing backfills.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/filmz/filmz/internal/catalog"
	"github.com/filmz/filmz/internal/config"
	"github.com/filmz/filmz/internal/logger"
	"github.com/filmz/filmz/internal/repository"
	"github.com/filmz/filmz/internal/store"
	"github.com/filmz/filmz/internal/tmdb"
)

type cli struct {
	app *kingpin.Application

	databaseURL *string
	tmdbURL     *string
	tmdbToken   *string
	logLevel    *string

	migrate *kingpin.CmdClause

	sync      *kingpin.CmdClause
	syncPages *int
	syncGenre *int64

	pricingFix       *kingpin.CmdClause
	pricingRandomize *kingpin.CmdClause
	randomSeed       *int64
}

func newCLI() *cli {
	app := kingpin.New("filmzctl", "Filmz catalog operator tool.")
	c := &cli{
		app:         app,
		databaseURL: app.Flag("database-url", "Postgres connection string (overrides DATABASE_URL).").String(),
		tmdbURL:     app.Flag("tmdb-url", "Provider API base URL (overrides TMDB_API_URL).").String(),
		tmdbToken:   app.Flag("tmdb-token", "Provider access token (overrides TMDB_ACCESS_TOKEN).").String(),
		logLevel:    app.Flag("log-level", "Log level (overrides LOG_LEVEL).").String(),
	}

	c.migrate = app.Command("migrate", "Apply pending schema migrations.")

	c.sync = app.Command("sync", "Sync genres and seed catalog pages from the provider.")
	c.syncPages = c.sync.Flag("pages", "Number of discover pages to sync.").Default("5").Int()
	c.syncGenre = c.sync.Flag("genre", "Restrict discover to this provider genre id.").Int64()

	pricing := app.Command("pricing", "Create pricing for movies that have none.")
	c.pricingFix = pricing.Command("fix", "Give every unpriced movie the fixed fallback price.")
	c.pricingRandomize = pricing.Command("randomize", "Give every unpriced movie a random price.")
	c.randomSeed = c.pricingRandomize.Flag("seed", "Random seed; 0 seeds from the clock.").Int64()
	return c
}

// overrides turns the global flags into a sparse config for WithOverrides.
func (c *cli) overrides() config.Config {
	return config.Config{
		LogLevel: *c.logLevel,
		Database: config.DatabaseConfig{URL: *c.databaseURL},
		TMDB:     config.TMDBConfig{APIURL: *c.tmdbURL, AccessToken: *c.tmdbToken},
	}
}

func main() {
	c := newCLI()
	command := kingpin.MustParse(c.app.Parse(os.Args[1:]))

	base, err := config.Load()
	if err != nil {
		c.app.Fatalf("config error: %v", err)
	}
	cfg, err := base.WithOverrides(c.overrides())
	if err != nil {
		c.app.Fatalf("config error: %v", err)
	}

	log := logger.New("filmzctl", cfg.LogLevel, true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, c, command, cfg, log); err != nil {
		log.Error().Err(err).Str("command", command).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli, command string, cfg config.Config, log *logger.Logger) error {
	st, err := store.New(ctx, cfg.Database.URL, store.Options{
		MaxConns:    int32(cfg.Database.MaxConns),
		ConnTimeout: cfg.Database.ConnTimeout,
		Logger:      log.Named("store"),
	})
	if err != nil {
		return err
	}
	defer st.Close()

	if command == c.migrate.FullCommand() {
		return st.Migrate(ctx)
	}

	svc, err := newCatalog(cfg, repository.New(st), log)
	if err != nil {
		return err
	}

	switch command {
	case c.sync.FullCommand():
		return syncCatalog(ctx, svc, *c.syncPages, *c.syncGenre, log)
	case c.pricingFix.FullCommand():
		return backfill(ctx, svc, catalog.AnnouncePricer(), log)
	case c.pricingRandomize.FullCommand():
		seed := *c.randomSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return backfill(ctx, svc, catalog.NewRandomPricer(rand.NewSource(seed)), log)
	}
	return fmt.Errorf("unknown command %q", command)
}

func newCatalog(cfg config.Config, repo *repository.Repository, log *logger.Logger) (*catalog.Service, error) {
	provider, err := tmdb.NewHTTPClient(tmdb.Options{
		BaseURL:           cfg.TMDB.APIURL,
		AccessToken:       cfg.TMDB.AccessToken,
		Timeout:           cfg.TMDB.Timeout,
		RequestsPerSecond: cfg.TMDB.RateLimit,
		Burst:             cfg.TMDB.RateBurst,
		Logger:            log.Named("tmdb"),
	})
	if err != nil {
		return nil, err
	}
	return catalog.NewService(provider, repo, catalog.Options{
		ImageBaseURL: cfg.TMDB.ImageURL,
		PageSize:     cfg.Catalog.PageSize,
		Logger:       log.Named("catalog"),
	}), nil
}

func syncCatalog(ctx context.Context, svc *catalog.Service, pages int, genre int64, log *logger.Logger) error {
	genres, err := svc.SyncGenres(ctx)
	if err != nil {
		return fmt.Errorf("sync genres: %w", err)
	}
	log.Info().Int("genres", len(genres)).Msg("genres synced")

	var providerGenre *int64
	if genre > 0 {
		providerGenre = &genre
	}

	total := 0
	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		res := svc.SyncMoviesPage(ctx, page, providerGenre)
		total += len(res.Movies)
		log.Info().Int("page", page).Int("movies", len(res.Movies)).Int("total_pages", res.TotalPages).Msg("page synced")
		if res.TotalPages > 0 && page >= res.TotalPages {
			break
		}
	}

	count, err := svc.CountMovies(ctx)
	if err != nil {
		return err
	}
	log.Info().Int("synced", total).Int64("catalog_size", count).Msg("sync complete")
	return nil
}

func backfill(ctx context.Context, svc *catalog.Service, pricer catalog.Pricer, log *logger.Logger) error {
	created, err := svc.BackfillPricing(ctx, pricer)
	log.Info().Int("created", created).Msg("pricing backfill finished")
	return err
}
