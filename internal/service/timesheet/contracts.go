package timesheet

import (
	"context"
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
)

// TimeEntryRepository is the time clock storage interface.
type TimeEntryRepository interface {
	Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	GetOpenByEmployee(ctx context.Context, employeeID int64) (*domain.TimeEntry, error)
	Close(ctx context.Context, id int64, clockOut time.Time) error
	ListByEmployeeBetween(ctx context.Context, employeeID int64, from, to time.Time) ([]*domain.TimeEntry, error)
}

// EmployeeRepository resolves employees for clocking and payroll.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	ListActive(ctx context.Context) ([]*domain.Employee, error)
}

// ScheduleRepository is the planned-shift storage interface.
type ScheduleRepository interface {
	Create(ctx context.Context, s *domain.WorkSchedule) (*domain.WorkSchedule, error)
	ListByEmployee(ctx context.Context, employeeID int64, from, to time.Time) ([]*domain.WorkSchedule, error)
}

// TimeProvider supplies the current time for clock-in/out stamps.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
