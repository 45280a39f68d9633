package create_booking

import (
	"context"
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
)

// BookingRepository is the slice of the bookings storage this use case needs.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, courtID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error)
}

// CourtRepository resolves and validates the court being booked.
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// CustomerRepository resolves the booking owner.
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error)
}

// TransactionManager wraps the availability check and the insert in
// one serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker is the optional per-court mutex in front of the transaction.
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
