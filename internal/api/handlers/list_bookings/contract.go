package list_bookings

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/service/bookings/models"
)

// BookingsService is the service slice behind GET /bookings.
type BookingsService interface {
	List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
