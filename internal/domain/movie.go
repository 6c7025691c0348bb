package domain

import (
	"math"
	"time"
)

// DefaultCurrency is the only currency the storefront sells in.
const DefaultCurrency = "USD"

// Genre is a local genre, optionally linked to a provider genre id.
type Genre struct {
	ID        int64
	TMDBID    *int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Movie represents the canonical movie entity in the database/service.
type Movie struct {
	ID           int64
	TMDBID       int64
	Title        string
	Description  string
	ThumbnailURL string
	BackdropURL  *string
	ReleaseDate  *time.Time
	Rating       float64
	GenreID      *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Hydrated relations; nil when absent or not loaded.
	Genre   *Genre
	Pricing *Pricing
}

// MovieUpsert carries the provider-derived fields written on every sync.
type MovieUpsert struct {
	TMDBID       int64
	Title        string
	Description  string
	ThumbnailURL string
	BackdropURL  *string
	ReleaseDate  *time.Time
	Rating       float64
	GenreID      *int64
}

// Pricing is the 1:1 price record of a movie. It is created once and never
// rewritten by catalog sync.
type Pricing struct {
	ID              int64
	MovieID         int64
	BasePrice       float64
	DiscountPercent *int
	Currency        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FinalPrice applies the discount, rounded to cents.
func (p Pricing) FinalPrice() float64 {
	return PriceQuote{BasePrice: p.BasePrice, DiscountPercent: p.DiscountPercent}.FinalPrice()
}

// PriceQuote is a proposed price produced by a pricing strategy.
type PriceQuote struct {
	BasePrice       float64
	DiscountPercent *int
	Currency        string
}

// FinalPrice applies the discount, rounded to cents.
func (q PriceQuote) FinalPrice() float64 {
	price := q.BasePrice
	if q.DiscountPercent != nil && *q.DiscountPercent > 0 {
		price = price * float64(100-*q.DiscountPercent) / 100
	}
	return math.Round(price*100) / 100
}
