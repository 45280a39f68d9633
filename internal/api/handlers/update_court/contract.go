package update_court

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/service/courts/models"
)

// CourtsService is the service slice behind PUT /courts/{id}.
type CourtsService interface {
	Update(ctx context.Context, id int64, req *models.UpdateCourtRequest) (*models.CourtResponse, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
