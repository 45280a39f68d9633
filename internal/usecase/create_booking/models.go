package create_booking

import (
	"time"

	"github.com/courtline/CourtBookingService/internal/access"
	"github.com/courtline/CourtBookingService/internal/domain"
)

// Request is the create-booking input.
type Request struct {
	Actor      access.Subject // Authenticated caller
	CustomerID int64          // Booking owner; ignored for customer actors, who always book for themselves
	CourtID    int64
	StartTime  time.Time
	EndTime    time.Time
	Status     *string  // Initial status, pending when omitted; staff may create confirmed bookings directly
	Fee        *float64 // Override; computed from the court's hourly rate when omitted
	Notes      *string
}

// Response is the created booking.
type Response struct {
	ID            int64
	CustomerID    int64
	CourtID       int64
	StartTime     time.Time
	EndTime       time.Time
	Status        string
	Fee           float64
	PaymentStatus string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		CourtID:       b.CourtID,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        string(b.Status),
		Fee:           b.Fee,
		PaymentStatus: string(b.PaymentStatus),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
