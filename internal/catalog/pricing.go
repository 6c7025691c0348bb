package catalog

import (
	"math/rand"
	"sync"

	"github.com/filmz/filmz/internal/domain"
)

// AnnouncePrice is the base price given to every newly synced movie.
const AnnouncePrice = 9.99

// Pricer proposes a price for a movie that has none.
type Pricer interface {
	Quote(movie domain.Movie) domain.PriceQuote
}

// PricerFunc adapts a function to Pricer.
type PricerFunc func(movie domain.Movie) domain.PriceQuote

func (f PricerFunc) Quote(movie domain.Movie) domain.PriceQuote {
	return f(movie)
}

// FixedPricer quotes the same undiscounted price for every movie.
type FixedPricer struct {
	BasePrice float64
	Currency  string
}

func (p FixedPricer) Quote(domain.Movie) domain.PriceQuote {
	currency := p.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return domain.PriceQuote{BasePrice: p.BasePrice, Currency: currency}
}

// AnnouncePricer is the default pricer for new and unpriced movies.
func AnnouncePricer() FixedPricer {
	return FixedPricer{BasePrice: AnnouncePrice, Currency: domain.DefaultCurrency}
}

// RandomPricer quotes a whole-dollar base between 9 and 14 and, 30% of the
// time, a discount between 10 and 39 percent.
type RandomPricer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomPricer draws from src; pass a seeded source for reproducible quotes.
func NewRandomPricer(src rand.Source) *RandomPricer {
	return &RandomPricer{rnd: rand.New(src)}
}

func (p *RandomPricer) Quote(domain.Movie) domain.PriceQuote {
	p.mu.Lock()
	defer p.mu.Unlock()

	quote := domain.PriceQuote{
		BasePrice: float64(9 + p.rnd.Intn(6)),
		Currency:  domain.DefaultCurrency,
	}
	if p.rnd.Float64() > 0.7 {
		discount := 10 + p.rnd.Intn(30)
		quote.DiscountPercent = &discount
	}
	return quote
}
