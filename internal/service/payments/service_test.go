package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtline/CourtBookingService/internal/access"
	"github.com/courtline/CourtBookingService/internal/domain"
	bookingRepo "github.com/courtline/CourtBookingService/internal/infra/storage/booking"
	"github.com/courtline/CourtBookingService/internal/service/payments/models"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	paid     []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) MarkPaid(_ context.Context, id int64) error {
	f.bookings[id].PaymentStatus = domain.PaymentPaid
	f.paid = append(f.paid, id)
	return nil
}

type fakePaymentRepo struct {
	payments []*domain.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	p.ID = int64(len(f.payments) + 1)
	p.PaymentDate = time.Now()
	f.payments = append(f.payments, p)
	return p, nil
}

func (f *fakePaymentRepo) ListByBooking(_ context.Context, bookingID int64) ([]*domain.Payment, error) {
	var out []*domain.Payment
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var staff = access.Subject{UserID: 1, Role: access.RoleStaff}

func newService(bookings *fakeBookingRepo, payments *fakePaymentRepo) *Service {
	return NewService(bookings, payments, passthroughTxManager{}, nopLogger{})
}

func payableBooking(id int64, fee float64) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		CustomerID:    10,
		CourtID:       1,
		Status:        domain.StatusConfirmed,
		Fee:           fee,
		PaymentStatus: domain.PaymentPending,
	}
}

func TestRecordPayment(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: payableBooking(1, 45)}}
	payments := &fakePaymentRepo{}

	svc := newService(bookings, payments)

	resp, err := svc.Record(context.Background(), &models.RecordPaymentRequest{
		Actor:     staff,
		BookingID: 1,
		Amount:    45,
		Method:    "card",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, "card", resp.Method)
	require.NotNil(t, resp.ProcessedBy)
	assert.Equal(t, staff.UserID, *resp.ProcessedBy)

	assert.Equal(t, []int64{1}, bookings.paid)
	assert.Equal(t, domain.PaymentPaid, bookings.bookings[1].PaymentStatus)
}

func TestRecordAlreadyPaid(t *testing.T) {
	b := payableBooking(1, 45)
	b.PaymentStatus = domain.PaymentPaid
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: b}}

	svc := newService(bookings, &fakePaymentRepo{})

	_, err := svc.Record(context.Background(), &models.RecordPaymentRequest{
		Actor: staff, BookingID: 1, Amount: 45, Method: "cash",
	})
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestRecordCancelledBooking(t *testing.T) {
	b := payableBooking(1, 45)
	b.Status = domain.StatusCancelled
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: b}}

	svc := newService(bookings, &fakePaymentRepo{})

	_, err := svc.Record(context.Background(), &models.RecordPaymentRequest{
		Actor: staff, BookingID: 1, Amount: 45, Method: "cash",
	})
	assert.ErrorIs(t, err, ErrBookingNotActive)
}

func TestRecordAmountMismatch(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: payableBooking(1, 45)}}

	svc := newService(bookings, &fakePaymentRepo{})

	_, err := svc.Record(context.Background(), &models.RecordPaymentRequest{
		Actor: staff, BookingID: 1, Amount: 30, Method: "cash",
	})
	assert.ErrorIs(t, err, ErrAmountMismatch)
	assert.Empty(t, bookings.paid)
}

func TestRecordValidation(t *testing.T) {
	svc := newService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}}, &fakePaymentRepo{})

	_, err := svc.Record(context.Background(), &models.RecordPaymentRequest{
		Actor: staff, BookingID: 1, Amount: 0, Method: "cash",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Record(context.Background(), &models.RecordPaymentRequest{
		Actor: staff, BookingID: 1, Amount: 45, Method: "barter",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Record(context.Background(), &models.RecordPaymentRequest{
		Actor: staff, BookingID: 99, Amount: 45, Method: "cash",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
