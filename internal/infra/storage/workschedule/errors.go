package workschedule

import "errors"

var (
	// ErrScheduleNotFound is returned when the schedule does not exist
	ErrScheduleNotFound = errors.New("workschedule.repository: schedule not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("workschedule.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("workschedule.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("workschedule.repository: failed to scan row")
)
