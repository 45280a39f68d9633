package domain

import "time"

// WorkSchedule is a planned shift for an employee on a given date.
// Plain record, no lifecycle of its own.
type WorkSchedule struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	StartTime  time.Time
	EndTime    time.Time
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
