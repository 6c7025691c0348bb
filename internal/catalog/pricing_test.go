package catalog

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmz/filmz/internal/domain"
)

func TestAnnouncePricer(t *testing.T) {
	q := AnnouncePricer().Quote(domain.Movie{ID: 1})
	assert.Equal(t, 9.99, q.BasePrice)
	assert.Nil(t, q.DiscountPercent)
	assert.Equal(t, "USD", q.Currency)
}

func TestFixedPricerDefaultsCurrency(t *testing.T) {
	q := FixedPricer{BasePrice: 4.5}.Quote(domain.Movie{})
	assert.Equal(t, domain.DefaultCurrency, q.Currency)
}

func TestPricerFunc(t *testing.T) {
	p := PricerFunc(func(m domain.Movie) domain.PriceQuote {
		return domain.PriceQuote{BasePrice: float64(m.ID), Currency: "USD"}
	})
	assert.Equal(t, 7.0, p.Quote(domain.Movie{ID: 7}).BasePrice)
}

func TestRandomPricerBounds(t *testing.T) {
	p := NewRandomPricer(rand.NewSource(42))

	var discounted int
	for i := 0; i < 1000; i++ {
		q := p.Quote(domain.Movie{})
		require.GreaterOrEqual(t, q.BasePrice, 9.0)
		require.LessOrEqual(t, q.BasePrice, 14.0)
		require.Equal(t, q.BasePrice, float64(int(q.BasePrice)), "base price is whole dollars")
		require.Equal(t, "USD", q.Currency)
		if q.DiscountPercent != nil {
			discounted++
			require.GreaterOrEqual(t, *q.DiscountPercent, 10)
			require.LessOrEqual(t, *q.DiscountPercent, 39)
		}
	}
	assert.Greater(t, discounted, 200)
	assert.Less(t, discounted, 400)
}

func TestRandomPricerDeterministic(t *testing.T) {
	a := NewRandomPricer(rand.NewSource(7))
	b := NewRandomPricer(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Quote(domain.Movie{}), b.Quote(domain.Movie{}))
	}
}

func TestRandomPricerConcurrent(t *testing.T) {
	p := NewRandomPricer(rand.NewSource(1))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = p.Quote(domain.Movie{})
			}
		}()
	}
	wg.Wait()
}
