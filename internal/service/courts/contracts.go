package courts

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/domain"
)

// CourtRepository is the courts storage interface.
type CourtRepository interface {
	Create(ctx context.Context, court *domain.Court) (*domain.Court, error)
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Court, error)
	Update(ctx context.Context, court *domain.Court) error
	Deactivate(ctx context.Context, id int64) error
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
