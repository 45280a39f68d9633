package create_booking

import "errors"

var (
	// ErrInvalidTimeRange is returned when end time is not after start time
	ErrInvalidTimeRange = errors.New("create_booking: end time must be after start time")

	// ErrCourtNotAvailable is returned when the court already has an
	// active booking overlapping the requested period
	ErrCourtNotAvailable = errors.New("create_booking: court already booked for this period")

	// ErrCourtNotFound is returned when the court does not exist
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrCourtInactive is returned when the court has been deactivated
	ErrCourtInactive = errors.New("create_booking: court is not active")

	// ErrCustomerNotFound is returned when the customer does not exist
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrCourtBusy is returned when the court lock is held by another
	// request; the caller should retry
	ErrCourtBusy = errors.New("create_booking: court is locked by another request")

	// ErrInvalidStatus is returned when the requested initial status is
	// neither pending nor confirmed
	ErrInvalidStatus = errors.New("create_booking: invalid initial status")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("create_booking: internal error")
)
