package commerce

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/filmz/filmz/internal/domain"
	"github.com/filmz/filmz/internal/events"
	"github.com/filmz/filmz/internal/logger"
	"github.com/filmz/filmz/internal/repository"
)

var (
	// ErrInvalidPurchase is returned for missing or non-positive inputs.
	ErrInvalidPurchase = errors.New("commerce: missing required fields")
	// ErrAlreadyPurchased is returned under the single policy for a pair
	// that already has a purchase.
	ErrAlreadyPurchased = errors.New("commerce: movie already purchased")
)

// Policy decides whether a movie can be bought more than once.
type Policy string

const (
	PolicyMultiple Policy = "multiple"
	PolicySingle   Policy = "single"
)

// ParsePolicy maps a config value to a Policy. Empty means PolicyMultiple.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyMultiple:
		return PolicyMultiple, nil
	case PolicySingle:
		return PolicySingle, nil
	}
	return "", fmt.Errorf("unknown purchase policy %q", s)
}

//go:generate mockgen -source=purchases.go -destination=../mock/purchase_store_mock.go -package=mock

// PurchaseStore persists purchases. CreatePurchase with exclusive=true must
// report repository.ErrAlreadyPurchased instead of inserting a second row.
type PurchaseStore interface {
	MovieExists(ctx context.Context, id int64) (bool, error)
	CreatePurchase(ctx context.Context, p domain.NewPurchase, exclusive bool) (domain.UserPurchase, error)
	PurchaseExists(ctx context.Context, userID, movieID int64) (bool, error)
	PurchaseSummaries(ctx context.Context, userID int64) ([]domain.PurchaseSummary, error)
}

// PurchaseRequest is a checkout submission.
type PurchaseRequest struct {
	UserID        int64
	MovieID       int64
	Price         float64
	PaymentMethod string
}

// Receipt identifies a recorded purchase.
type Receipt struct {
	OrderID       int64
	TransactionID string
	PurchasedAt   time.Time
}

// Purchases records checkouts.
type Purchases struct {
	store     PurchaseStore
	publisher events.Publisher
	policy    Policy
	logger    *logger.Logger

	now   func() time.Time
	newTx func() string
}

// NewPurchases wires the purchase service. A nil publisher discards events.
func NewPurchases(store PurchaseStore, publisher events.Publisher, policy Policy, log *logger.Logger) *Purchases {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if policy == "" {
		policy = PolicyMultiple
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Purchases{
		store:     store,
		publisher: publisher,
		policy:    policy,
		logger:    log,
		now:       time.Now,
		newTx:     func() string { return uuid.NewString() },
	}
}

// Policy reports the active purchase policy.
func (p *Purchases) Policy() Policy {
	return p.policy
}

// Purchase records a completed purchase at the submitted price and
// publishes purchase.completed.
func (p *Purchases) Purchase(ctx context.Context, req PurchaseRequest) (Receipt, error) {
	if req.UserID <= 0 || req.MovieID <= 0 || req.Price <= 0 || strings.TrimSpace(req.PaymentMethod) == "" {
		return Receipt{}, ErrInvalidPurchase
	}

	exists, err := p.store.MovieExists(ctx, req.MovieID)
	if err != nil {
		return Receipt{}, fmt.Errorf("check movie: %w", err)
	}
	if !exists {
		return Receipt{}, ErrMovieNotFound
	}

	row, err := p.store.CreatePurchase(ctx, domain.NewPurchase{
		UserID:        req.UserID,
		MovieID:       req.MovieID,
		PricePaid:     req.Price,
		Currency:      domain.DefaultCurrency,
		PaymentMethod: req.PaymentMethod,
		TransactionID: p.newTx(),
		PurchaseDate:  p.now().UTC(),
	}, p.policy == PolicySingle)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyPurchased) {
			return Receipt{}, ErrAlreadyPurchased
		}
		return Receipt{}, fmt.Errorf("create purchase: %w", err)
	}

	log := p.logger.With().Int64("order_id", row.ID).Int64("user_id", row.UserID).Int64("movie_id", row.MovieID).Logger()
	log.Info().Str("transaction_id", row.TransactionID).Msg("commerce: purchase recorded")

	evt := events.PurchaseCompleted{
		OrderID:       row.ID,
		TransactionID: row.TransactionID,
		UserID:        row.UserID,
		MovieID:       row.MovieID,
		PricePaid:     row.PricePaid,
		Currency:      row.Currency,
		PaymentMethod: row.PaymentMethod,
		PurchasedAt:   row.PurchaseDate,
	}
	if err := p.publisher.PublishPurchaseCompleted(ctx, evt); err != nil {
		log.Warn().Err(err).Msg("commerce: publish purchase event failed")
	}

	return Receipt{OrderID: row.ID, TransactionID: row.TransactionID, PurchasedAt: row.PurchaseDate}, nil
}

// HasPurchased reports whether any purchase exists for the pair.
func (p *Purchases) HasPurchased(ctx context.Context, userID, movieID int64) (bool, error) {
	ok, err := p.store.PurchaseExists(ctx, userID, movieID)
	if err != nil {
		return false, fmt.Errorf("check purchase: %w", err)
	}
	return ok, nil
}

// List returns the user's purchases, newest first.
func (p *Purchases) List(ctx context.Context, userID int64) ([]domain.PurchaseSummary, error) {
	summaries, err := p.store.PurchaseSummaries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return summaries, nil
}
