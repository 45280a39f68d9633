package timeclock

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/service/timesheet/models"
)

// TimesheetService is the service slice behind the time clock routes.
type TimesheetService interface {
	ClockIn(ctx context.Context, req *models.ClockRequest) (*models.TimeEntryResponse, error)
	ClockOut(ctx context.Context, req *models.ClockRequest) (*models.TimeEntryResponse, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
