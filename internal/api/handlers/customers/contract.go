package customers

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/service/customers/models"
)

// CustomersService is the service slice behind the customer endpoints.
type CustomersService interface {
	Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error)
	GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error)
	List(ctx context.Context, includeInactive bool) (*models.CustomerListResponse, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
