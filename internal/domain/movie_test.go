package domain

import "testing"

func TestPriceQuoteFinalPrice(t *testing.T) {
	pct := func(v int) *int { return &v }

	tests := []struct {
		name  string
		quote PriceQuote
		want  float64
	}{
		{name: "no discount", quote: PriceQuote{BasePrice: 9.99}, want: 9.99},
		{name: "zero discount", quote: PriceQuote{BasePrice: 12.99, DiscountPercent: pct(0)}, want: 12.99},
		{name: "rounded to cents", quote: PriceQuote{BasePrice: 9.99, DiscountPercent: pct(15)}, want: 8.49},
		{name: "full discount", quote: PriceQuote{BasePrice: 14.99, DiscountPercent: pct(100)}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.quote.FinalPrice(); got != tt.want {
				t.Fatalf("FinalPrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPricingFinalPriceMatchesQuote(t *testing.T) {
	discount := 25
	p := Pricing{BasePrice: 11.99, DiscountPercent: &discount, Currency: DefaultCurrency}
	if got := p.FinalPrice(); got != 8.99 {
		t.Fatalf("FinalPrice() = %v, want 8.99", got)
	}
}
