package list_courts

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/service/courts/models"
)

// CourtsService is the service slice behind GET /courts.
type CourtsService interface {
	List(ctx context.Context, includeInactive bool) (*models.CourtListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.CourtResponse, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
