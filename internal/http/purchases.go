package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/filmz/filmz/internal/commerce"
	"github.com/filmz/filmz/internal/validation"
)

type purchaseRequest struct {
	MovieID       movieID `json:"movieId" validate:"gt=0"`
	Price         float64 `json:"price" validate:"gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
}

type purchaseResponse struct {
	Success bool   `json:"success"`
	OrderID int64  `json:"orderId"`
	Message string `json:"message"`
}

type purchaseStatusResponse struct {
	Purchased bool `json:"purchased"`
}

type purchaseSummaryResponse struct {
	ID           int64     `json:"id"`
	PurchaseID   int64     `json:"purchaseId"`
	Title        string    `json:"title"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Rating       float64   `json:"rating"`
	Genre        string    `json:"genre"`
	PurchaseDate time.Time `json:"purchaseDate"`
	PricePaid    float64   `json:"pricePaid"`
	Currency     string    `json:"currency"`
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFrom(r.Context())

	var req purchaseRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	req.PaymentMethod = strings.TrimSpace(req.PaymentMethod)
	if err := s.validator.Validate(req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			s.respondJSON(w, http.StatusBadRequest, errorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "Missing required fields",
				Details: verr.Fields,
			})
			return
		}
		s.respondServiceError(w, r, err, "Failed to process purchase")
		return
	}

	receipt, err := s.purchases.Purchase(r.Context(), commerce.PurchaseRequest{
		UserID:        session.User.ID,
		MovieID:       int64(req.MovieID),
		Price:         req.Price,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		s.respondServiceError(w, r, err, "Failed to process purchase")
		return
	}
	s.respondJSON(w, http.StatusOK, purchaseResponse{
		Success: true,
		OrderID: receipt.OrderID,
		Message: "Purchase completed successfully",
	})
}

func (s *Server) handleCheckPurchase(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFrom(r.Context())

	id, err := parseID(r.URL.Query().Get("movieId"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Movie ID is required")
		return
	}

	purchased, err := s.purchases.HasPurchased(r.Context(), session.User.ID, id)
	if err != nil {
		s.respondServiceError(w, r, err, "Failed to check purchase status")
		return
	}
	s.respondJSON(w, http.StatusOK, purchaseStatusResponse{Purchased: purchased})
}

func (s *Server) handleListPurchases(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFrom(r.Context())

	summaries, err := s.purchases.List(r.Context(), session.User.ID)
	if err != nil {
		s.respondServiceError(w, r, err, "Failed to fetch purchased movies")
		return
	}

	resp := make([]purchaseSummaryResponse, 0, len(summaries))
	for _, p := range summaries {
		resp = append(resp, purchaseSummaryResponse{
			ID:           p.MovieID,
			PurchaseID:   p.PurchaseID,
			Title:        p.Title,
			ThumbnailURL: p.ThumbnailURL,
			Rating:       p.Rating,
			Genre:        p.GenreName,
			PurchaseDate: p.PurchaseDate,
			PricePaid:    p.PricePaid,
			Currency:     p.Currency,
		})
	}
	s.respondJSON(w, http.StatusOK, resp)
}
