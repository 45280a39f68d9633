package create_court

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/service/courts/models"
)

// CourtsService is the service slice behind POST /courts.
type CourtsService interface {
	Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
