package bookings_report

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/service/reports/models"
)

// ReportsService is the service slice behind GET /reports/bookings.
type ReportsService interface {
	BookingsSummary(ctx context.Context, req *models.BookingsSummaryRequest) (*models.BookingsSummaryResponse, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
