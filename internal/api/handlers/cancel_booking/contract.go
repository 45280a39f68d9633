package cancel_booking

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/service/bookings/models"
)

// BookingsService is the service slice behind POST /bookings/{id}/cancel.
type BookingsService interface {
	Cancel(ctx context.Context, id int64, req *models.CancelBookingRequest) error
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
