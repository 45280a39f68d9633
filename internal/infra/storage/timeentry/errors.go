package timeentry

import "errors"

var (
	// ErrTimeEntryNotFound is returned when the time entry does not exist
	ErrTimeEntryNotFound = errors.New("timeentry.repository: time entry not found")

	// ErrOpenEntryExists is returned when the employee already has an
	// open shift and tries to clock in again
	ErrOpenEntryExists = errors.New("timeentry.repository: open time entry already exists")

	// ErrNoOpenEntry is returned on clock-out when no shift is open
	ErrNoOpenEntry = errors.New("timeentry.repository: no open time entry")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("timeentry.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("timeentry.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("timeentry.repository: failed to scan row")
)
