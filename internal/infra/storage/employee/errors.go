package employee

import "errors"

var (
	// ErrEmployeeNotFound is returned when the employee does not exist
	ErrEmployeeNotFound = errors.New("employee.repository: employee not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("employee.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("employee.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("employee.repository: failed to scan row")
)
