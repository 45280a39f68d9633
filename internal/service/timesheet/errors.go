package timesheet

import "errors"

var (
	// ErrEmployeeNotFound is returned when the employee does not exist
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrAlreadyClockedIn is returned when a shift is already open
	ErrAlreadyClockedIn = errors.New("employee already has an open shift")

	// ErrNotClockedIn is returned on clock-out without an open shift
	ErrNotClockedIn = errors.New("employee has no open shift")

	// ErrInvalidPeriod is returned when the payroll period is malformed
	ErrInvalidPeriod = errors.New("period end must be after period start")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("timesheet: internal error")
)
