package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtline/CourtBookingService/internal/access"
	"github.com/courtline/CourtBookingService/internal/domain"
	bookingRepo "github.com/courtline/CourtBookingService/internal/infra/storage/booking"
	customerRepo "github.com/courtline/CourtBookingService/internal/infra/storage/customer"
	"github.com/courtline/CourtBookingService/internal/service/bookings/models"
	"github.com/courtline/CourtBookingService/pkg/ptr"
)

// Service is the read/cancel/delete surface for bookings. Creation and
// editing go through the conflict-guard use cases.
type Service struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the bookings service.
func NewService(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID fetches one booking. Customers can only see their own.
func (s *Service) GetByID(ctx context.Context, id int64, actor access.Subject) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actor.UserID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnership(ctx, booking, actor); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List returns bookings matching the filter. Customers are always
// scoped to their own bookings regardless of the requested filter.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for user=%d role=%s", req.Actor.UserID, req.Actor.Role)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter from user=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if req.Actor.IsCustomer() {
		customer, err := s.getActorCustomer(ctx, "List", req.Actor)
		if err != nil {
			return nil, err
		}
		filter.CustomerID = ptr.Ptr(customer.ID)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel soft-cancels a booking. Paid bookings and bookings that have
// already started are protected; the row is kept with status=cancelled.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", id, req.Actor.UserID)

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.getBooking(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	if err := s.checkOwnership(ctx, booking, req.Actor); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.Actor.UserID, id)
		return err
	}

	if booking.IsCancelled() {
		s.logger.Warn("Cancel: booking id=%d is already cancelled", id)
		return ErrAlreadyCancelled
	}

	if err := s.checkRemovalGuards(booking); err != nil {
		s.logger.Warn("Cancel: booking id=%d protected: %v", id, err)
		return err
	}

	if err := s.bookingRepo.Cancel(ctx, id, req.Reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}

// Delete hard-removes a booking under the same guards as Cancel.
func (s *Service) Delete(ctx context.Context, id int64, actor access.Subject) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%d", id, actor.UserID)

	booking, err := s.getBooking(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if err := s.checkOwnership(ctx, booking, actor); err != nil {
		s.logger.Warn("Delete: access denied for user=%d to booking id=%d", actor.UserID, id)
		return err
	}

	if err := s.checkRemovalGuards(booking); err != nil {
		s.logger.Warn("Delete: booking id=%d protected: %v", id, err)
		return err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// checkRemovalGuards enforces the two protection rules shared by
// cancellation and deletion. Paid wins over past when both apply.
func (s *Service) checkRemovalGuards(booking *domain.Booking) error {
	if booking.IsPaid() {
		return ErrBookingPaid
	}
	if booking.HasStarted(s.timeProvider.Now()) {
		return ErrBookingInPast
	}
	return nil
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) checkOwnership(ctx context.Context, booking *domain.Booking, actor access.Subject) error {
	if !actor.IsCustomer() {
		return nil
	}

	customer, err := s.getActorCustomer(ctx, "checkOwnership", actor)
	if err != nil {
		return err
	}

	if booking.CustomerID != customer.ID {
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) getActorCustomer(ctx context.Context, op string, actor access.Subject) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("%s: user=%d has no customer profile", op, actor.UserID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("%s: failed to get customer profile for user=%d: %v", op, actor.UserID, err)
		return nil, fmt.Errorf("%w: %s - failed to get customer profile: %v", ErrInternal, op, err)
	}
	return customer, nil
}
