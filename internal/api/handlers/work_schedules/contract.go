package work_schedules

import (
	"context"
	"time"

	"github.com/courtline/CourtBookingService/internal/service/timesheet/models"
)

// TimesheetService is the service slice behind the schedules routes.
type TimesheetService interface {
	CreateSchedule(ctx context.Context, req *models.CreateScheduleRequest) (*models.ScheduleResponse, error)
	ListSchedules(ctx context.Context, employeeID int64, from, to time.Time) (*models.ScheduleListResponse, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
