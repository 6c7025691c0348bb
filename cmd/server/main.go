package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/filmz/filmz/internal/auth"
	"github.com/filmz/filmz/internal/cache"
	"github.com/filmz/filmz/internal/catalog"
	"github.com/filmz/filmz/internal/commerce"
	"github.com/filmz/filmz/internal/config"
	"github.com/filmz/filmz/internal/events"
	httpserver "github.com/filmz/filmz/internal/http"
	"github.com/filmz/filmz/internal/logger"
	"github.com/filmz/filmz/internal/repository"
	"github.com/filmz/filmz/internal/store"
	"github.com/filmz/filmz/internal/tmdb"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.New("server", "error", false).Fatal().Err(err).Msg("config error")
	}

	log := logger.New("server", cfg.LogLevel, cfg.LogPretty)

	st, err := store.New(ctx, cfg.Database.URL, store.Options{
		MaxConns:               int32(cfg.Database.MaxConns),
		MinConns:               int32(cfg.Database.MinConns),
		MaxConnIdleTime:        cfg.Database.MaxConnIdleTime,
		MaxConnLifetime:        cfg.Database.MaxConnLifetime,
		ConnTimeout:            cfg.Database.ConnTimeout,
		StatementCacheCapacity: cfg.Database.StatementCache,
		Logger:                 log.Named("store"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer st.Close()

	if cfg.Database.AutoMigrate {
		if err := st.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
	}

	var providerCache tmdb.Cache
	if cfg.Redis.URL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, provider cache disabled")
		} else {
			defer client.Close()
			providerCache = cache.NewRedisCache(client, "filmz:tmdb:", log.Named("cache"))
		}
	}

	provider, err := tmdb.NewHTTPClient(tmdb.Options{
		BaseURL:           cfg.TMDB.APIURL,
		AccessToken:       cfg.TMDB.AccessToken,
		Timeout:           cfg.TMDB.Timeout,
		RequestsPerSecond: cfg.TMDB.RateLimit,
		Burst:             cfg.TMDB.RateBurst,
		Cache:             providerCache,
		DiscoverTTL:       cfg.TMDB.CacheTTL,
		GenresTTL:         cfg.TMDB.GenreCacheTTL,
		Logger:            log.Named("tmdb"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init tmdb client")
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.Events.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.PurchaseQueue, log.Named("events"))
		if err != nil {
			log.Fatal().Err(err).Msg("init event publisher")
		}
		publisher = amqpPublisher
	}
	defer publisher.Close()

	policy, err := commerce.ParsePolicy(cfg.PurchasePolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("purchase policy")
	}

	repo := repository.New(st)
	catalogSvc := catalog.NewService(provider, repo, catalog.Options{
		Pricer:         catalog.AnnouncePricer(),
		FallbackPricer: catalog.AnnouncePricer(),
		ImageBaseURL:   cfg.TMDB.ImageURL,
		PageSize:       cfg.Catalog.PageSize,
		SyncOnBrowse:   cfg.Catalog.SyncOnBrowse,
		Logger:         log.Named("catalog"),
	})

	syncCtx, cancel := context.WithTimeout(ctx, cfg.TMDB.Timeout)
	if genres, err := catalogSvc.SyncGenres(syncCtx); err != nil {
		log.Warn().Err(err).Msg("initial genre sync failed")
	} else {
		log.Info().Int("genres", len(genres)).Msg("genres synced")
	}
	cancel()

	authSvc := auth.NewService(repo, auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenLifetime.Duration()), cfg.Auth.BcryptCost, log.Named("auth"))

	server := httpserver.New(cfg, httpserver.Deps{
		Health:    st,
		Catalog:   catalogSvc,
		Auth:      authSvc,
		Favorites: commerce.NewFavorites(repo, log.Named("favorites")),
		Purchases: commerce.NewPurchases(repo, publisher, policy, log.Named("purchases")),
		Logger:    log,
	})

	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			serverErrCh <- err
			return
		}
		serverErrCh <- nil
	}()

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
}
