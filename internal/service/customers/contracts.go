package customers

import (
	"context"
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
)

// CustomerRepository is the customers storage interface.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Customer, error)
}

// TimeProvider supplies the current time; stamps the membership date.
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
