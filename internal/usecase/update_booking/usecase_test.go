package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtline/CourtBookingService/internal/access"
	"github.com/courtline/CourtBookingService/internal/domain"
	bookingstorage "github.com/courtline/CourtBookingService/internal/infra/storage/booking"
	courtstorage "github.com/courtline/CourtBookingService/internal/infra/storage/court"
	customerstorage "github.com/courtline/CourtBookingService/internal/infra/storage/customer"
	"github.com/courtline/CourtBookingService/internal/lock"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	updated  []*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingstorage.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, courtID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.CourtID == courtID && b.IsActive() && b.Overlaps(start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return bookingstorage.ErrBookingNotFound
	}
	copied := *booking
	f.bookings[booking.ID] = &copied
	f.updated = append(f.updated, &copied)
	return nil
}

type fakeCourtRepo struct {
	courts map[int64]*domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	court, ok := f.courts[id]
	if !ok {
		return nil, courtstorage.ErrCourtNotFound
	}
	return court, nil
}

type fakeCustomerRepo struct {
	customers []*domain.Customer
}

func (f *fakeCustomerRepo) GetByUserID(_ context.Context, userID int64) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.UserID != nil && *c.UserID == userID {
			return c, nil
		}
	}
	return nil, customerstorage.ErrCustomerNotFound
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}

func newFixture(t *testing.T) (*fakeBookingRepo, *UseCase) {
	t.Helper()

	start := mustTime(t, "2026-03-12T10:00:00Z")
	userID := int64(5)

	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, CustomerID: 10, CourtID: 1, Status: domain.StatusConfirmed,
			StartTime: start, EndTime: start.Add(time.Hour)},
		2: {ID: 2, CustomerID: 11, CourtID: 1, Status: domain.StatusConfirmed,
			StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour)},
		3: {ID: 3, CustomerID: 10, CourtID: 1, Status: domain.StatusCompleted,
			StartTime: start.Add(-3 * time.Hour), EndTime: start.Add(-2 * time.Hour)},
	}}
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{
		1: {ID: 1, Name: "Court A", HourlyRate: 25, Active: true},
		2: {ID: 2, Name: "Court B", HourlyRate: 30, Active: true},
	}}
	customers := &fakeCustomerRepo{customers: []*domain.Customer{
		{ID: 10, UserID: &userID, Name: "Lin Dan", Active: true},
	}}

	uc := NewUseCase(bookings, courts, customers, passthroughTx{}, lock.NopLocker{}, time.Second, 0, nopLogger{})
	return bookings, uc
}

func staffActor() access.Subject {
	return access.Subject{UserID: 1, Role: access.RoleStaff}
}

func TestUpdateBookingExcludesItself(t *testing.T) {
	bookings, uc := newFixture(t)

	// A save that keeps the interval must not collide with the
	// booking's own row.
	note := "bring spare shuttles"
	resp, err := uc.Execute(context.Background(), &Request{
		Actor:     staffActor(),
		BookingID: 1,
		Notes:     &note,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, note, *resp.Notes)
	assert.Len(t, bookings.updated, 1)
}

func TestUpdateBookingOverlapConflict(t *testing.T) {
	_, uc := newFixture(t)

	// Stretch booking 1 into booking 2's slot.
	end := mustTime(t, "2026-03-12T12:30:00Z")
	_, err := uc.Execute(context.Background(), &Request{
		Actor:     staffActor(),
		BookingID: 1,
		EndTime:   &end,
	})
	assert.ErrorIs(t, err, ErrCourtNotAvailable)
}

func TestUpdateBookingMoveToFreeCourt(t *testing.T) {
	_, uc := newFixture(t)

	courtID := int64(2)
	resp, err := uc.Execute(context.Background(), &Request{
		Actor:     staffActor(),
		BookingID: 2,
		CourtID:   &courtID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.CourtID)
}

func TestUpdateBookingTerminalStatus(t *testing.T) {
	_, uc := newFixture(t)

	fee := 12.0
	_, err := uc.Execute(context.Background(), &Request{
		Actor:     staffActor(),
		BookingID: 3,
		Fee:       &fee,
	})
	assert.ErrorIs(t, err, ErrTerminalStatus)
}

func TestUpdateBookingDurationBounds(t *testing.T) {
	_, uc := newFixture(t)

	// Stretching past the maximum slot length is rejected before the
	// availability check.
	end := mustTime(t, "2026-03-12T21:30:00Z")
	_, err := uc.Execute(context.Background(), &Request{
		Actor:     staffActor(),
		BookingID: 2,
		EndTime:   &end,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Shrinking below the minimum slot length is rejected too.
	short := mustTime(t, "2026-03-12T12:05:00Z")
	_, err = uc.Execute(context.Background(), &Request{
		Actor:     staffActor(),
		BookingID: 2,
		EndTime:   &short,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateBookingInvalidTimeRange(t *testing.T) {
	_, uc := newFixture(t)

	end := mustTime(t, "2026-03-12T09:00:00Z")
	_, err := uc.Execute(context.Background(), &Request{
		Actor:     staffActor(),
		BookingID: 1,
		EndTime:   &end,
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestUpdateBookingCustomerOwnership(t *testing.T) {
	_, uc := newFixture(t)

	note := "mine"
	_, err := uc.Execute(context.Background(), &Request{
		Actor:     access.Subject{UserID: 5, Role: access.RoleCustomer},
		BookingID: 2, // belongs to customer 11
		Notes:     &note,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Own booking is editable.
	resp, err := uc.Execute(context.Background(), &Request{
		Actor:     access.Subject{UserID: 5, Role: access.RoleCustomer},
		BookingID: 1,
		Notes:     &note,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.CustomerID)
}

func TestUpdateBookingCustomerCannotChangeStatus(t *testing.T) {
	_, uc := newFixture(t)

	status := string(domain.StatusConfirmed)
	_, err := uc.Execute(context.Background(), &Request{
		Actor:     access.Subject{UserID: 5, Role: access.RoleCustomer},
		BookingID: 1,
		Status:    &status,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateBookingNotFound(t *testing.T) {
	_, uc := newFixture(t)

	_, err := uc.Execute(context.Background(), &Request{
		Actor:     staffActor(),
		BookingID: 99,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
