package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtline/CourtBookingService/internal/domain"
	bookingRepo "github.com/courtline/CourtBookingService/internal/infra/storage/booking"
	"github.com/courtline/CourtBookingService/internal/service/payments/models"
)

// Service records money taken for bookings. A payment marks the
// booking paid, which in turn arms the cancellation/deletion guard.
type Service struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService creates the payments service.
func NewService(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Record settles a booking: inserts the payment row and flips the
// booking's payment_status to paid in one transaction.
func (s *Service) Record(ctx context.Context, req *models.RecordPaymentRequest) (*models.PaymentResponse, error) {
	s.logger.Info("Record: payment for booking id=%d amount=%.2f by user=%d",
		req.BookingID, req.Amount, req.Actor.UserID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	method, err := models.ToDomainPaymentMethod(req.Method)
	if err != nil {
		s.logger.Warn("Record: invalid method=%q for booking id=%d", req.Method, req.BookingID)
		return nil, fmt.Errorf("%w: invalid method", ErrInvalidInput)
	}

	var created *domain.Payment

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Record: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("Record: repository error for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: Record - repository error: %v", ErrInternal, err)
		}

		if booking.IsPaid() {
			s.logger.Warn("Record: booking id=%d is already paid", req.BookingID)
			return ErrAlreadyPaid
		}
		if booking.IsCancelled() {
			s.logger.Warn("Record: booking id=%d is cancelled", req.BookingID)
			return ErrBookingNotActive
		}
		if req.Amount != booking.Fee {
			s.logger.Warn("Record: amount=%.2f does not match fee=%.2f for booking id=%d",
				req.Amount, booking.Fee, req.BookingID)
			return ErrAmountMismatch
		}

		processedBy := req.Actor.UserID
		created, err = s.paymentRepo.Create(txCtx, &domain.Payment{
			BookingID:     req.BookingID,
			Amount:        req.Amount,
			Method:        method,
			TransactionID: req.TransactionID,
			Notes:         req.Notes,
			ProcessedBy:   &processedBy,
		})
		if err != nil {
			s.logger.Error("Record: failed to create payment for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: Record - failed to create payment: %v", ErrInternal, err)
		}

		if err := s.bookingRepo.MarkPaid(txCtx, req.BookingID); err != nil {
			s.logger.Error("Record: failed to mark booking id=%d paid: %v", req.BookingID, err)
			return fmt.Errorf("%w: Record - failed to mark booking paid: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Record: payment id=%d recorded for booking id=%d", created.ID, created.BookingID)
	return models.FromDomainPayment(created), nil
}

// ListByBooking returns all payments taken for one booking.
func (s *Service) ListByBooking(ctx context.Context, bookingID int64) (*models.PaymentListResponse, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	payments, err := s.paymentRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("ListByBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPaymentList(payments), nil
}
