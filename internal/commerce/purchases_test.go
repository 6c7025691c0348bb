package commerce

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/filmz/filmz/internal/domain"
	"github.com/filmz/filmz/internal/events"
	"github.com/filmz/filmz/internal/mock"
	"github.com/filmz/filmz/internal/repository"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPurchases(t *testing.T, policy Policy) (*Purchases, *mock.MockPurchaseStore, *mock.MockPublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock.NewMockPurchaseStore(ctrl)
	pub := mock.NewMockPublisher(ctrl)
	p := NewPurchases(store, pub, policy, nil)
	p.now = func() time.Time { return fixedNow }
	p.newTx = func() string { return "tx-123" }
	return p, store, pub
}

func TestPurchaseRecordsAndPublishes(t *testing.T) {
	p, store, pub := newTestPurchases(t, PolicyMultiple)
	ctx := context.Background()

	want := domain.NewPurchase{
		UserID:        1,
		MovieID:       5,
		PricePaid:     9.99,
		Currency:      "USD",
		PaymentMethod: "card",
		TransactionID: "tx-123",
		PurchaseDate:  fixedNow,
	}
	store.EXPECT().MovieExists(gomock.Any(), int64(5)).Return(true, nil)
	store.EXPECT().CreatePurchase(gomock.Any(), want, false).Return(domain.UserPurchase{
		ID: 77, UserID: 1, MovieID: 5, PricePaid: 9.99, Currency: "USD", PaymentMethod: "card", TransactionID: "tx-123", PurchaseDate: fixedNow,
	}, nil)
	pub.EXPECT().PublishPurchaseCompleted(gomock.Any(), events.PurchaseCompleted{
		OrderID: 77, TransactionID: "tx-123", UserID: 1, MovieID: 5, PricePaid: 9.99, Currency: "USD", PaymentMethod: "card", PurchasedAt: fixedNow,
	}).Return(nil)

	receipt, err := p.Purchase(ctx, PurchaseRequest{UserID: 1, MovieID: 5, Price: 9.99, PaymentMethod: "card"})
	require.NoError(t, err)
	assert.Equal(t, int64(77), receipt.OrderID)
	assert.Equal(t, "tx-123", receipt.TransactionID)
}

func TestPurchasePublishFailureIsNotReturned(t *testing.T) {
	p, store, pub := newTestPurchases(t, PolicyMultiple)
	store.EXPECT().MovieExists(gomock.Any(), int64(5)).Return(true, nil)
	store.EXPECT().CreatePurchase(gomock.Any(), gomock.Any(), false).Return(domain.UserPurchase{ID: 1}, nil)
	pub.EXPECT().PublishPurchaseCompleted(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	_, err := p.Purchase(context.Background(), PurchaseRequest{UserID: 1, MovieID: 5, Price: 1, PaymentMethod: "card"})
	require.NoError(t, err)
}

func TestPurchaseValidation(t *testing.T) {
	p, _, _ := newTestPurchases(t, PolicyMultiple)
	cases := map[string]PurchaseRequest{
		"no user":    {MovieID: 1, Price: 1, PaymentMethod: "card"},
		"no movie":   {UserID: 1, Price: 1, PaymentMethod: "card"},
		"zero price": {UserID: 1, MovieID: 1, PaymentMethod: "card"},
		"no method":  {UserID: 1, MovieID: 1, Price: 1, PaymentMethod: "  "},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := p.Purchase(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidPurchase)
		})
	}
}

func TestPurchaseUnknownMovieCreatesNothing(t *testing.T) {
	p, store, _ := newTestPurchases(t, PolicyMultiple)
	store.EXPECT().MovieExists(gomock.Any(), int64(404)).Return(false, nil)

	_, err := p.Purchase(context.Background(), PurchaseRequest{UserID: 1, MovieID: 404, Price: 1, PaymentMethod: "card"})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestPurchaseSinglePolicy(t *testing.T) {
	p, store, pub := newTestPurchases(t, PolicySingle)
	ctx := context.Background()
	req := PurchaseRequest{UserID: 1, MovieID: 5, Price: 9.99, PaymentMethod: "card"}

	store.EXPECT().MovieExists(gomock.Any(), int64(5)).Return(true, nil).Times(2)
	gomock.InOrder(
		store.EXPECT().CreatePurchase(gomock.Any(), gomock.Any(), true).Return(domain.UserPurchase{ID: 1}, nil),
		store.EXPECT().CreatePurchase(gomock.Any(), gomock.Any(), true).Return(domain.UserPurchase{}, repository.ErrAlreadyPurchased),
	)
	pub.EXPECT().PublishPurchaseCompleted(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := p.Purchase(ctx, req)
	require.NoError(t, err)
	_, err = p.Purchase(ctx, req)
	assert.ErrorIs(t, err, ErrAlreadyPurchased)
}

func TestHasPurchasedAndList(t *testing.T) {
	p, store, _ := newTestPurchases(t, PolicyMultiple)
	ctx := context.Background()
	store.EXPECT().PurchaseExists(gomock.Any(), int64(1), int64(5)).Return(false, nil)
	store.EXPECT().PurchaseExists(gomock.Any(), int64(1), int64(6)).Return(true, nil)
	store.EXPECT().PurchaseSummaries(gomock.Any(), int64(1)).Return([]domain.PurchaseSummary{{PurchaseID: 2, GenreName: "Unknown"}}, nil)

	ok, err := p.HasPurchased(ctx, 1, 5)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = p.HasPurchased(ctx, 1, 6)
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := p.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Unknown", list[0].GenreName)
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]Policy{"": PolicyMultiple, "multiple": PolicyMultiple, " Single ": PolicySingle} {
		got, err := ParsePolicy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParsePolicy("twice")
	require.Error(t, err)
}

func TestNewPurchasesDefaults(t *testing.T) {
	p := NewPurchases(nil, nil, "", nil)
	assert.Equal(t, PolicyMultiple, p.Policy())
	assert.IsType(t, events.Nop{}, p.publisher)
}
