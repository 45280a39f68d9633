package employees

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtline/CourtBookingService/internal/domain"
	employeeRepo "github.com/courtline/CourtBookingService/internal/infra/storage/employee"
	"github.com/courtline/CourtBookingService/internal/service/employees/models"
)

// Service manages the staff roster backing the time clock, schedules
// and payroll.
type Service struct {
	employeeRepo EmployeeRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the employees service.
func NewService(employeeRepo EmployeeRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create registers a new active employee. The hire date defaults to
// registration time when omitted.
func (s *Service) Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("Create: creating employee name=%q position=%q", req.Name, req.Position)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.HourlyRate < 0 {
		return nil, fmt.Errorf("%w: hourlyRate must not be negative", ErrInvalidInput)
	}
	position, err := models.ToDomainPosition(req.Position)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hireDate := s.timeProvider.Now()
	if req.HireDate != nil {
		hireDate = *req.HireDate
	}

	employee, err := s.employeeRepo.Create(ctx, &domain.Employee{
		Name:       req.Name,
		Position:   position,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		HireDate:   hireDate,
		HourlyRate: req.HourlyRate,
		Active:     true,
	})
	if err != nil {
		s.logger.Error("Create: repository error for employee name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created employee id=%d", employee.ID)
	return models.FromDomainEmployee(employee), nil
}

// GetByID fetches one employee.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EmployeeResponse, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("GetByID: employee id=%d not found", id)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("GetByID: repository error for employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainEmployee(employee), nil
}

// List returns the active staff roster.
func (s *Service) List(ctx context.Context) (*models.EmployeeListResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainEmployeeList(employees), nil
}
