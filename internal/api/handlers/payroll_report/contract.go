package payroll_report

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/service/timesheet/models"
)

// TimesheetService is the service slice behind GET /reports/payroll.
type TimesheetService interface {
	Payroll(ctx context.Context, req *models.PayrollRequest) (*models.PayrollResponse, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
