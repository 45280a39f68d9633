package create_booking

import (
	"context"

	createBooking "github.com/courtline/CourtBookingService/internal/usecase/create_booking"
)

// CreateBookingUseCase is the use case behind POST /bookings.
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
