package reports

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/domain"
)

// BookingRepository is the slice of the bookings storage reports need.
type BookingRepository interface {
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
