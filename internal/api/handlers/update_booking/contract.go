package update_booking

import (
	"context"

	updateBooking "github.com/courtline/CourtBookingService/internal/usecase/update_booking"
)

// UpdateBookingUseCase is the use case behind PUT /bookings/{id}.
type UpdateBookingUseCase interface {
	Execute(ctx context.Context, req *updateBooking.Request) (*updateBooking.Response, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
