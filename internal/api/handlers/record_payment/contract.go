package record_payment

import (
	"context"

	"github.com/courtline/CourtBookingService/internal/service/payments/models"
)

// PaymentsService is the service slice behind the payments routes.
type PaymentsService interface {
	Record(ctx context.Context, req *models.RecordPaymentRequest) (*models.PaymentResponse, error)
	ListByBooking(ctx context.Context, bookingID int64) (*models.PaymentListResponse, error)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
