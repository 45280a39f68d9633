package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtline/CourtBookingService/internal/domain"
	customerRepo "github.com/courtline/CourtBookingService/internal/infra/storage/customer"
	"github.com/courtline/CourtBookingService/internal/service/customers/models"
)

// Service manages customer profiles. Every booking references one, so
// profiles are registered here before any reservation can be made.
type Service struct {
	customerRepo CustomerRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the customers service.
func NewService(customerRepo CustomerRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create registers a new active customer. The membership date is
// stamped at registration time.
func (s *Service) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Create: creating customer name=%q", req.Name)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.UserID != nil && *req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}

	customer, err := s.customerRepo.Create(ctx, &domain.Customer{
		UserID:         req.UserID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		MembershipDate: s.timeProvider.Now(),
		Active:         true,
	})
	if err != nil {
		s.logger.Error("Create: repository error for customer name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created customer id=%d", customer.ID)
	return models.FromDomainCustomer(customer), nil
}

// GetByID fetches one customer.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCustomer(customer), nil
}

// List returns customers, active only unless includeInactive is set.
func (s *Service) List(ctx context.Context, includeInactive bool) (*models.CustomerListResponse, error) {
	customers, err := s.customerRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCustomerList(customers), nil
}
