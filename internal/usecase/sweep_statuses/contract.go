package sweep_statuses

import (
	"context"
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
	"github.com/courtline/CourtBookingService/internal/integrations/notifyservice"
)

// BookingRepository is the slice of the bookings storage the sweep needs.
type BookingRepository interface {
	MarkInProgress(ctx context.Context, now time.Time) (int64, error)
	MarkCompleted(ctx context.Context, now time.Time) (int64, error)
	ListEndingSoon(ctx context.Context, now, threshold time.Time) ([]*domain.Booking, error)
	MarkNotified(ctx context.Context, id int64) error
}

// CourtRepository resolves court names for notifications.
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// NotifyClient delivers ending-soon notices.
type NotifyClient interface {
	Send(ctx context.Context, n *notifyservice.Notification) error
}

// TimeProvider supplies the current time (swapped out in tests).
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
