package employees

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/service/employees/models"
)

// EmployeesService is the service slice behind the employee endpoints.
type EmployeesService interface {
	Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (*models.EmployeeResponse, error)
	List(ctx context.Context) (*models.EmployeeListResponse, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
