package employees

import "errors"

var (
	// ErrEmployeeNotFound is returned when the employee does not exist
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("employees: internal error")
)
