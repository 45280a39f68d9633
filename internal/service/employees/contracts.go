package employees

import (
	"context"
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
)

// EmployeeRepository is the employees storage interface.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	ListActive(ctx context.Context) ([]*domain.Employee, error)
}

// TimeProvider supplies the current time; defaults the hire date.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
