package get_booking

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/access"
	"github.com/courtline/CourtBookingService/internal/service/bookings/models"
)

// BookingsService is the service slice behind GET /bookings/{id}.
type BookingsService interface {
	GetByID(ctx context.Context, id int64, actor access.Subject) (*models.BookingResponse, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
