package update_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrInvalidTimeRange is returned when end time is not after start time
	ErrInvalidTimeRange = errors.New("update_booking: end time must be after start time")

	// ErrCourtNotAvailable is returned when another active booking
	// overlaps the requested period on the same court
	ErrCourtNotAvailable = errors.New("update_booking: court already booked for this period")

	// ErrCourtNotFound is returned when the target court does not exist
	ErrCourtNotFound = errors.New("update_booking: court not found")

	// ErrCourtInactive is returned when the target court has been deactivated
	ErrCourtInactive = errors.New("update_booking: court is not active")

	// ErrAccessDenied is returned when a customer edits a booking that
	// is not theirs
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrTerminalStatus is returned when editing a cancelled or
	// completed booking
	ErrTerminalStatus = errors.New("update_booking: booking is in a terminal status")

	// ErrInvalidStatus is returned on an unknown target status
	ErrInvalidStatus = errors.New("update_booking: invalid booking status")

	// ErrCourtBusy is returned when the court lock is held by another request
	ErrCourtBusy = errors.New("update_booking: court is locked by another request")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("update_booking: internal error")
)
