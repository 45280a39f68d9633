package bookings

import (
	"context"
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
)

// BookingRepository is the bookings storage interface.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
	Delete(ctx context.Context, id int64) error
}

// CustomerRepository resolves the acting customer for ownership checks.
type CustomerRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error)
}

// TimeProvider supplies the current time for the past-start guard.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
