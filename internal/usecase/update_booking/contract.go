package update_booking

import (
	"context"
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
)

// BookingRepository is the slice of the bookings storage this use case needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, courtID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

// CourtRepository resolves the target court when the booking moves.
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// CustomerRepository resolves the acting customer for ownership checks.
type CustomerRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error)
}

// TransactionManager wraps the availability check and the write in one
// serializable transaction.
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
