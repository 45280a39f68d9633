package courts

import "errors"

var (
	// ErrCourtNotFound is returned when the court does not exist
	ErrCourtNotFound = errors.New("court not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("courts: internal error")
)
