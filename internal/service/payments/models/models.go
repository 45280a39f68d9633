package models

import (
	"errors"
	"time"

	"github.com/courtline/CourtBookingService/internal/access"
	"github.com/courtline/CourtBookingService/internal/domain"
)

var (
	// ErrInvalidMethod is returned when the payment method is unknown
	ErrInvalidMethod = errors.New("invalid payment method")
)

// RecordPaymentRequest settles a booking.
type RecordPaymentRequest struct {
	Actor         access.Subject
	BookingID     int64   `json:"bookingId"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	TransactionID *string `json:"transactionId,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// PaymentResponse is the payment DTO.
type PaymentResponse struct {
	ID            int64     `json:"id"`
	BookingID     int64     `json:"bookingId"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	TransactionID *string   `json:"transactionId,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	ProcessedBy   *int64    `json:"processedBy,omitempty"`
	PaymentDate   time.Time `json:"paymentDate"`
}

// PaymentListResponse is the per-booking payments listing DTO.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// FromDomainPayment converts the domain model into a DTO.
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Method:        string(p.Method),
		TransactionID: p.TransactionID,
		Notes:         p.Notes,
		ProcessedBy:   p.ProcessedBy,
		PaymentDate:   p.PaymentDate,
	}
}

// FromDomainPaymentList converts a slice of domain models into a DTO.
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{
		Payments: make([]PaymentResponse, 0, len(payments)),
	}
	for _, p := range payments {
		if pr := FromDomainPayment(p); pr != nil {
			resp.Payments = append(resp.Payments, *pr)
		}
	}
	return resp
}

// ToDomainPaymentMethod validates and converts a method string.
func ToDomainPaymentMethod(method string) (domain.PaymentMethod, error) {
	switch m := domain.PaymentMethod(method); m {
	case domain.MethodCash, domain.MethodCard, domain.MethodOnline, domain.MethodOther:
		return m, nil
	default:
		return "", ErrInvalidMethod
	}
}
