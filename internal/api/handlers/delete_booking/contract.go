package delete_booking

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/access"
)

// BookingsService is the service slice behind DELETE /bookings/{id}.
type BookingsService interface {
	Delete(ctx context.Context, id int64, actor access.Subject) error
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
