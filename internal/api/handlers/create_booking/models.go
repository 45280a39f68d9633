package create_booking

import (
	"time"

	"github.com/courtline/CourtBookingService/internal/access"
	createBooking "github.com/courtline/CourtBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest is the HTTP request body.
type CreateBookingRequest struct {
	CustomerID int64     `json:"customerId,omitempty"` // Staff only; customers always book for themselves
	CourtID    int64     `json:"courtId"`
	StartTime  time.Time `json:"startTime"` // RFC 3339
	EndTime    time.Time `json:"endTime"`   // RFC 3339
	Status     *string   `json:"status,omitempty"`
	Fee        *float64  `json:"fee,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the HTTP body into the use case input.
func (r *CreateBookingRequest) ToUseCaseRequest(actor access.Subject) *createBooking.Request {
	return &createBooking.Request{
		Actor:      actor,
		CustomerID: r.CustomerID,
		CourtID:    r.CourtID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Status:     r.Status,
		Fee:        r.Fee,
		Notes:      r.Notes,
	}
}

// CreateBookingResponse is the HTTP response body.
type CreateBookingResponse struct {
	ID            int64     `json:"id"`
	CustomerID    int64     `json:"customerId"`
	CourtID       int64     `json:"courtId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
	Fee           float64   `json:"fee"`
	PaymentStatus string    `json:"paymentStatus"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FromUseCaseResponse converts the use case output into the HTTP body.
func FromUseCaseResponse(r *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		CourtID:       r.CourtID,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Status:        r.Status,
		Fee:           r.Fee,
		PaymentStatus: r.PaymentStatus,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
