package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingPaid is returned when a paid booking is cancelled or deleted
	ErrBookingPaid = errors.New("paid booking cannot be removed; refund it first")

	// ErrBookingInPast is returned when the booking has already started
	ErrBookingInPast = errors.New("booking that has started cannot be removed")

	// ErrAlreadyCancelled is returned when the booking is already cancelled
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	// ErrAccessDenied is returned when the actor may not touch the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("bookings: internal error")
)
