package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
	courtRepo "github.com/courtline/CourtBookingService/internal/infra/storage/court"
	customerRepo "github.com/courtline/CourtBookingService/internal/infra/storage/customer"
	"github.com/courtline/CourtBookingService/internal/lock"
)

// UseCase creates bookings. The overlap check and the insert run in a
// single serializable transaction so concurrent requests for the same
// court and window cannot both commit.
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

// NewUseCase creates the create-booking use case.
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

// Execute runs the create-booking flow.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d role=%s court=%d interval=[%s, %s)",
		req.Actor.UserID, req.Actor.Role, req.CourtID,
		req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Input validation, including the start < end rule.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	status, err := initialStatus(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid initial status for user=%d", req.Actor.UserID)
		return nil, err
	}

	// 2. Resolve the booking owner. Customers always book for their own
	// profile; staff name the customer explicitly.
	customer, err := uc.resolveCustomer(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Resolve the court; deactivated courts take no new bookings.
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}
	if !court.Active {
		uc.logger.Warn("CreateBooking: court id=%d is inactive", req.CourtID)
		return nil, ErrCourtInactive
	}

	fee := court.FeeFor(req.EndTime.Sub(req.StartTime))
	if req.Fee != nil {
		fee = *req.Fee
	}

	// 4. Per-court mutex. Best-effort fence in front of the serializable
	// transaction; a lock still busy after the wait window means another
	// request is booking this court right now.
	key := lock.CourtKey(req.CourtID)
	acquired, err := lock.Acquire(ctx, uc.locker, key, uc.lockTTL, uc.lockWait)
	if err != nil {
		uc.logger.Error("CreateBooking: court lock failed for court=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to acquire court lock: %v", ErrInternal, err)
	}
	if !acquired {
		uc.logger.Warn("CreateBooking: court=%d is locked by another request", req.CourtID)
		return nil, ErrCourtBusy
	}
	defer func() {
		if err := uc.locker.Unlock(ctx, key); err != nil {
			uc.logger.Error("CreateBooking: failed to release court lock court=%d: %v", req.CourtID, err)
		}
	}()

	var result *domain.Booking

	// 5. Check-then-write atomically: overlapping rows are read FOR
	// UPDATE inside a serializable transaction, then the insert commits
	// in the same transaction.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, req.CourtID, req.StartTime, req.EndTime, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check availability: %v", err)
			return fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: court=%d has %d overlapping active booking(s)",
				req.CourtID, len(overlapping))
			return ErrCourtNotAvailable
		}

		booking := &domain.Booking{
			CustomerID:    customer.ID,
			CourtID:       req.CourtID,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Status:        status,
			Fee:           fee,
			PaymentStatus: domain.PaymentPending,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d court=%d customer=%d status=%s",
		result.ID, result.CourtID, result.CustomerID, result.Status)

	return fromDomain(result), nil
}

func (uc *UseCase) resolveCustomer(ctx context.Context, req *Request) (*domain.Customer, error) {
	if req.Actor.IsCustomer() {
		customer, err := uc.customerRepo.GetByUserID(ctx, req.Actor.UserID)
		if err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				uc.logger.Warn("CreateBooking: user=%d has no customer profile", req.Actor.UserID)
				return nil, ErrCustomerNotFound
			}
			uc.logger.Error("CreateBooking: failed to get customer profile for user=%d: %v", req.Actor.UserID, err)
			return nil, fmt.Errorf("%w: failed to get customer profile: %v", ErrInternal, err)
		}
		return customer, nil
	}

	if req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	customer, err := uc.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}
	return customer, nil
}
