package courts

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtline/CourtBookingService/internal/domain"
	courtRepo "github.com/courtline/CourtBookingService/internal/infra/storage/court"
	"github.com/courtline/CourtBookingService/internal/service/courts/models"
)

// Service manages the court catalogue.
type Service struct {
	courtRepo CourtRepository
	logger    Logger
}

// NewService creates the courts service.
func NewService(courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// Create registers a new active court.
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Create: creating court name=%q", req.Name)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.HourlyRate < 0 {
		return nil, fmt.Errorf("%w: hourlyRate must not be negative", ErrInvalidInput)
	}

	court, err := s.courtRepo.Create(ctx, &domain.Court{
		Name:        req.Name,
		Description: req.Description,
		HourlyRate:  req.HourlyRate,
		Active:      true,
	})
	if err != nil {
		s.logger.Error("Create: repository error for court name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created court id=%d", court.ID)
	return models.FromDomainCourt(court), nil
}

// GetByID fetches one court.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	court, err := s.getCourt(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainCourt(court), nil
}

// List returns courts, active only unless includeInactive is set.
func (s *Service) List(ctx context.Context, includeInactive bool) (*models.CourtListResponse, error) {
	courts, err := s.courtRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCourtList(courts), nil
}

// Update edits a court's catalogue fields.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Update: updating court id=%d", id)

	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		return nil, fmt.Errorf("%w: hourlyRate must not be negative", ErrInvalidInput)
	}
	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	court, err := s.getCourt(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		court.Name = *req.Name
	}
	if req.Description != nil {
		court.Description = req.Description
	}
	if req.HourlyRate != nil {
		court.HourlyRate = *req.HourlyRate
	}

	if err := s.courtRepo.Update(ctx, court); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated court id=%d", id)
	return models.FromDomainCourt(court), nil
}

// Deactivate soft-deletes a court. Existing bookings keep referencing
// the row; the court just stops accepting new reservations.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating court id=%d", id)

	if err := s.courtRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Deactivate: court id=%d not found", id)
			return ErrCourtNotFound
		}
		s.logger.Error("Deactivate: repository error for court id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated court id=%d", id)
	return nil
}

func (s *Service) getCourt(ctx context.Context, op string, id int64) (*domain.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("%s: court id=%d not found", op, id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("%s: repository error for court id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return court, nil
}
