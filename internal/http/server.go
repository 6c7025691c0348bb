package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/filmz/filmz/internal/auth"
	"github.com/filmz/filmz/internal/catalog"
	"github.com/filmz/filmz/internal/commerce"
	"github.com/filmz/filmz/internal/config"
	"github.com/filmz/filmz/internal/domain"
	"github.com/filmz/filmz/internal/logger"
	"github.com/filmz/filmz/internal/validation"
)

// HealthChecker reports store reachability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CatalogService serves the browsable catalog.
type CatalogService interface {
	Browse(ctx context.Context, q catalog.BrowseQuery) (catalog.Listing, error)
	Movie(ctx context.Context, id int64) (domain.Movie, error)
	Genres(ctx context.Context) ([]domain.Genre, error)
	CountMovies(ctx context.Context) (int64, error)
}

// AuthService handles accounts and sessions.
type AuthService interface {
	Signup(ctx context.Context, in auth.SignupInput) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
	ResolveSession(ctx context.Context, raw string) (auth.Session, bool)
	TokenLifetime() time.Duration
}

// FavoritesService maintains like sets.
type FavoritesService interface {
	Toggle(ctx context.Context, userID, movieID int64) (bool, error)
	IsFavorited(ctx context.Context, userID, movieID int64) (bool, error)
	List(ctx context.Context, userID int64) ([]domain.Movie, error)
}

// PurchasesService records and lists purchases.
type PurchasesService interface {
	Purchase(ctx context.Context, req commerce.PurchaseRequest) (commerce.Receipt, error)
	HasPurchased(ctx context.Context, userID, movieID int64) (bool, error)
	List(ctx context.Context, userID int64) ([]domain.PurchaseSummary, error)
}

// Deps are the services the handlers call.
type Deps struct {
	Health    HealthChecker
	Catalog   CatalogService
	Auth      AuthService
	Favorites FavoritesService
	Purchases PurchasesService
	Logger    *logger.Logger
}

// Server wires HTTP routing, middleware, and handlers.
type Server struct {
	cfg       config.Config
	health    HealthChecker
	catalog   CatalogService
	auth      AuthService
	favorites FavoritesService
	purchases PurchasesService
	validator *validation.Validator
	logger    *logger.Logger
	router    chi.Router
	httpSrv   *http.Server
}

// New constructs the HTTP server with base middleware and routes.
func New(cfg config.Config, deps Deps) *Server {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()
	s := &Server{
		cfg:       cfg,
		health:    deps.Health,
		catalog:   deps.Catalog,
		auth:      deps.Auth,
		favorites: deps.Favorites,
		purchases: deps.Purchases,
		validator: validation.New(),
		logger:    log,
		router:    r,
	}

	r.Use(middleware.RealIP)
	r.Use(s.withTraceID)
	r.Use(s.withLogging)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	s.registerRoutes()
	return s
}

// Handler exposes the router, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) registerRoutes() {
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Route("/api", func(r chi.Router) {
		r.Use(s.withSession)

		r.Get("/db-check", s.handleDBCheck)
		r.Get("/genres", s.handleListGenres)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", s.handleSignup)
			r.Post("/login", s.handleLogin)
			r.Get("/logout", s.handleLogout)
		})

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", s.handleListMovies)
			r.Get("/{id}", s.handleGetMovie)
		})

		r.Get("/favorites", s.handleCheckFavorite)
		r.With(s.requireSession).Post("/favorites", s.handleToggleFavorite)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Post("/purchases", s.handlePurchase)
			r.Get("/purchases/check", s.handleCheckPurchase)
			r.Get("/user/purchases", s.handleListPurchases)
			r.Get("/user/favorites", s.handleListFavorites)
		})
	})
}

// Start boots the HTTP server and blocks until ctx is done or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpSrv.Addr).Msg("http: listening")
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if s.health == nil {
		s.respondError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "Store not configured")
		return
	}
	if err := s.health.HealthCheck(ctx); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("health check failed")
		s.respondError(w, http.StatusServiceUnavailable, "UNAVAILABLE", http.StatusText(http.StatusServiceUnavailable))
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type dbCheckResponse struct {
	Status     string `json:"status"`
	MovieCount int64  `json:"movieCount"`
}

func (s *Server) handleDBCheck(w http.ResponseWriter, r *http.Request) {
	count, err := s.catalog.CountMovies(r.Context())
	if err != nil {
		s.respondServiceError(w, r, err, "Database connection failed")
		return
	}
	s.respondJSON(w, http.StatusOK, dbCheckResponse{Status: "ok", MovieCount: count})
}
