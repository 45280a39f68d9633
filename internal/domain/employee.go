package domain

import "time"

// EmployeePosition enumerates staff roles on the payroll.
type EmployeePosition string

const (
	PositionManager     EmployeePosition = "manager"
	PositionAttendant   EmployeePosition = "attendant"
	PositionCleaner     EmployeePosition = "cleaner"
	PositionMaintenance EmployeePosition = "maintenance"
)

// Employee is a staff member tracked for scheduling and payroll.
type Employee struct {
	ID         int64
	Name       string
	Position   EmployeePosition
	Email      *string
	Phone      string
	Address    *string
	HireDate   time.Time
	HourlyRate float64
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
