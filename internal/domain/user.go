package domain

import "time"

// User is a storefront account. PasswordHash never leaves the service layer.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser is the payload for creating an account.
type NewUser struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
}

// UserLike is a favorite: one per (user, movie).
type UserLike struct {
	ID        int64
	UserID    int64
	MovieID   int64
	CreatedAt time.Time
}

// UserPurchase records a completed purchase.
type UserPurchase struct {
	ID            int64
	UserID        int64
	MovieID       int64
	PricePaid     float64
	Currency      string
	PaymentMethod string
	TransactionID string
	PurchaseDate  time.Time
}

// NewPurchase is the payload for recording a purchase.
type NewPurchase struct {
	UserID        int64
	MovieID       int64
	PricePaid     float64
	Currency      string
	PaymentMethod string
	TransactionID string
	PurchaseDate  time.Time
}

// PurchaseSummary is a purchase projected with its movie for library views.
type PurchaseSummary struct {
	PurchaseID   int64
	MovieID      int64
	Title        string
	ThumbnailURL string
	Rating       float64
	GenreName    string
	PurchaseDate time.Time
	PricePaid    float64
	Currency     string
}
