package payments

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingNotActive is returned when the booking cannot take payment
	ErrBookingNotActive = errors.New("booking is not payable in its current status")

	// ErrAlreadyPaid is returned when the booking is already settled
	ErrAlreadyPaid = errors.New("booking is already paid")

	// ErrAmountMismatch is returned when the amount does not cover the fee
	ErrAmountMismatch = errors.New("payment amount does not match booking fee")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("payments: internal error")
)
