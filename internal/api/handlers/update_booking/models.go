package update_booking

import (
	"time"

	"github.com/courtline/CourtBookingService/internal/access"
	updateBooking "github.com/courtline/CourtBookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest is the HTTP request body. Omitted fields keep
// the stored value.
type UpdateBookingRequest struct {
	CourtID   *int64     `json:"courtId,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Status    *string    `json:"status,omitempty"`
	Fee       *float64   `json:"fee,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the HTTP body into the use case input.
func (r *UpdateBookingRequest) ToUseCaseRequest(actor access.Subject, bookingID int64) *updateBooking.Request {
	return &updateBooking.Request{
		Actor:     actor,
		BookingID: bookingID,
		CourtID:   r.CourtID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Status:    r.Status,
		Fee:       r.Fee,
		Notes:     r.Notes,
	}
}

// UpdateBookingResponse is the HTTP response body.
type UpdateBookingResponse struct {
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
func FromUseCaseResponse(r *updateBooking.Response) *UpdateBookingResponse {
	return &UpdateBookingResponse{
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
