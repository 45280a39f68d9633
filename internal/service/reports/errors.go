package reports

import "errors"

var (
	// ErrInvalidPeriod is returned when the report period is malformed
	ErrInvalidPeriod = errors.New("period end must be after period start")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("reports: internal error")
)
