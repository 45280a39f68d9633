package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/courtline/CourtBookingService/internal/access"
	"github.com/courtline/CourtBookingService/internal/domain"
	bookingRepo "github.com/courtline/CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/courtline/CourtBookingService/internal/infra/storage/court"
	customerRepo "github.com/courtline/CourtBookingService/internal/infra/storage/customer"
	"github.com/courtline/CourtBookingService/internal/lock"
)

// UseCase edits bookings. The booking under edit is excluded from the
// overlap query so saving a booking never conflicts with itself.
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	customerRepo CustomerRepository
	txManager    TransactionManager
	locker       Locker
	lockTTL      time.Duration
	lockWait     time.Duration
	logger       Logger
}

// NewUseCase creates the update-booking use case.
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	locker Locker,
	lockTTL time.Duration,
	lockWait time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		locker:       locker,
		lockTTL:      lockTTL,
		lockWait:     lockWait,
		logger:       logger,
	}
}

// Execute runs the update-booking flow.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d user=%d role=%s", req.BookingID, req.Actor.UserID, req.Actor.Role)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if req.Fee != nil && *req.Fee < 0 {
		return nil, fmt.Errorf("%w: fee must not be negative", ErrInvalidInput)
	}

	// Read outside the transaction first for the cheap checks; the
	// authoritative re-read happens inside the transaction.
	current, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if err := uc.checkOwnership(ctx, current, req.Actor); err != nil {
		return nil, err
	}

	targetCourtID := current.CourtID
	if req.CourtID != nil {
		targetCourtID = *req.CourtID
	}

	if req.CourtID != nil && *req.CourtID != current.CourtID {
		court, err := uc.courtRepo.GetByID(ctx, targetCourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				uc.logger.Warn("UpdateBooking: court id=%d not found", targetCourtID)
				return nil, ErrCourtNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get court id=%d: %v", targetCourtID, err)
			return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}
		if !court.Active {
			uc.logger.Warn("UpdateBooking: court id=%d is inactive", targetCourtID)
			return nil, ErrCourtInactive
		}
	}

	key := lock.CourtKey(targetCourtID)
	acquired, err := lock.Acquire(ctx, uc.locker, key, uc.lockTTL, uc.lockWait)
	if err != nil {
		uc.logger.Error("UpdateBooking: court lock failed for court=%d: %v", targetCourtID, err)
		return nil, fmt.Errorf("%w: failed to acquire court lock: %v", ErrInternal, err)
	}
	if !acquired {
		uc.logger.Warn("UpdateBooking: court=%d is locked by another request", targetCourtID)
		return nil, ErrCourtBusy
	}
	defer func() {
		if err := uc.locker.Unlock(ctx, key); err != nil {
			uc.logger.Error("UpdateBooking: failed to release court lock court=%d: %v", targetCourtID, err)
		}
	}()

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		if booking.IsTerminal() {
			uc.logger.Warn("UpdateBooking: booking id=%d is %s", booking.ID, booking.Status)
			return ErrTerminalStatus
		}

		applyChanges(booking, req)

		if !booking.EndTime.After(booking.StartTime) {
			return ErrInvalidTimeRange
		}

		duration := booking.EndTime.Sub(booking.StartTime)
		if duration < domain.MinBookingDurationMinutes*time.Minute ||
			duration > domain.MaxBookingDurationHours*time.Hour {
			return fmt.Errorf("%w: booking duration must be between %d minutes and %d hours",
				ErrInvalidInput, domain.MinBookingDurationMinutes, domain.MaxBookingDurationHours)
		}

		if req.Status != nil {
			status, err := parseStatus(*req.Status, req.Actor)
			if err != nil {
				return err
			}
			booking.Status = status
		}

		// Excluding the booking's own id keeps a no-op save from
		// conflicting with itself.
		overlapping, err := uc.bookingRepo.FindOverlapping(
			txCtx, booking.CourtID, booking.StartTime, booking.EndTime, &booking.ID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to check availability: %v", err)
			return fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("UpdateBooking: court=%d has %d overlapping active booking(s)",
				booking.CourtID, len(overlapping))
			return ErrCourtNotAvailable
		}

		if err := uc.bookingRepo.Update(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)
	return fromDomain(result), nil
}

func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

func (uc *UseCase) checkOwnership(ctx context.Context, booking *domain.Booking, actor access.Subject) error {
	if !actor.IsCustomer() {
		return nil
	}

	customer, err := uc.customerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("UpdateBooking: user=%d has no customer profile", actor.UserID)
			return ErrAccessDenied
		}
		uc.logger.Error("UpdateBooking: failed to get customer profile for user=%d: %v", actor.UserID, err)
		return fmt.Errorf("%w: failed to get customer profile: %v", ErrInternal, err)
	}

	if booking.CustomerID != customer.ID {
		uc.logger.Warn("UpdateBooking: user=%d denied access to booking id=%d", actor.UserID, booking.ID)
		return ErrAccessDenied
	}
	return nil
}

func applyChanges(b *domain.Booking, req *Request) {
	if req.CourtID != nil {
		b.CourtID = *req.CourtID
	}
	if req.StartTime != nil {
		b.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		b.EndTime = *req.EndTime
	}
	if req.Fee != nil {
		b.Fee = *req.Fee
	}
	if req.Notes != nil {
		b.Notes = req.Notes
	}
}

func parseStatus(s string, actor access.Subject) (domain.BookingStatus, error) {
	if !actor.IsStaff() {
		return "", ErrAccessDenied
	}

	switch status := domain.BookingStatus(s); status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusInProgress, domain.StatusCompleted:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
