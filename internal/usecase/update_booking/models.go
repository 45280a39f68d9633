package update_booking

import (
	"time"

	"github.com/courtline/CourtBookingService/internal/access"
	"github.com/courtline/CourtBookingService/internal/domain"
)

// Request is the update-booking input. Nil optional fields keep the
// stored value.
type Request struct {
	Actor     access.Subject
	BookingID int64
	CourtID   *int64
	StartTime *time.Time
	EndTime   *time.Time
	Status    *string // Staff only; customers cannot change status here
	Fee       *float64
	Notes     *string
}

// Response is the updated booking.
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
