package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtline/CourtBookingService/internal/access"
	"github.com/courtline/CourtBookingService/internal/domain"
	courtstorage "github.com/courtline/CourtBookingService/internal/infra/storage/court"
	customerstorage "github.com/courtline/CourtBookingService/internal/infra/storage/customer"
	"github.com/courtline/CourtBookingService/internal/lock"
)

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, courtID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.existing {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.CourtID == courtID && b.IsActive() && b.Overlaps(start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *booking
	created.ID = f.nextID
	f.created = append(f.created, &created)
	return &created, nil
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

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, customerstorage.ErrCustomerNotFound
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

type busyLocker struct{}

func (busyLocker) Lock(context.Context, string, time.Duration) (bool, error) { return false, nil }
func (busyLocker) Unlock(context.Context, string) error                      { return nil }

// contestedLocker stays busy for a fixed number of attempts, then frees up.
type contestedLocker struct {
	busyFor  int
	attempts int
}

func (l *contestedLocker) Lock(context.Context, string, time.Duration) (bool, error) {
	l.attempts++
	return l.attempts > l.busyFor, nil
}

func (l *contestedLocker) Unlock(context.Context, string) error { return nil }

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

func newFixture() (*fakeBookingRepo, *fakeCourtRepo, *fakeCustomerRepo, *UseCase) {
	userID := int64(5)
	bookings := &fakeBookingRepo{}
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{
		1: {ID: 1, Name: "Court A", HourlyRate: 25, Active: true},
		2: {ID: 2, Name: "Court B", HourlyRate: 30, Active: true},
		3: {ID: 3, Name: "Old Court", HourlyRate: 10, Active: false},
	}}
	customers := &fakeCustomerRepo{customers: []*domain.Customer{
		{ID: 10, UserID: &userID, Name: "Lin Dan", Active: true},
	}}
	uc := NewUseCase(bookings, courts, customers, passthroughTx{}, lock.NopLocker{}, time.Second, 0, nopLogger{})
	return bookings, courts, customers, uc
}

func staffActor() access.Subject {
	return access.Subject{UserID: 1, Role: access.RoleStaff}
}

func TestCreateBookingBackToBack(t *testing.T) {
	bookings, _, _, uc := newFixture()

	start := mustTime(t, "2026-03-12T10:00:00Z")
	bookings.existing = []*domain.Booking{
		{ID: 100, CourtID: 1, Status: domain.StatusConfirmed,
			StartTime: start, EndTime: start.Add(time.Hour)},
	}

	// A slot starting exactly where the previous one ends does not
	// overlap it.
	resp, err := uc.Execute(context.Background(), &Request{
		Actor:      staffActor(),
		CustomerID: 10,
		CourtID:    1,
		StartTime:  start.Add(time.Hour),
		EndTime:    start.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Len(t, bookings.created, 1)
}

func TestCreateBookingOverlapConflict(t *testing.T) {
	bookings, _, _, uc := newFixture()

	start := mustTime(t, "2026-03-12T10:00:00Z")
	bookings.existing = []*domain.Booking{
		{ID: 100, CourtID: 1, Status: domain.StatusConfirmed,
			StartTime: start, EndTime: start.Add(time.Hour)},
	}

	_, err := uc.Execute(context.Background(), &Request{
		Actor:      staffActor(),
		CustomerID: 10,
		CourtID:    1,
		StartTime:  start.Add(30 * time.Minute),
		EndTime:    start.Add(90 * time.Minute),
	})
	assert.ErrorIs(t, err, ErrCourtNotAvailable)
	assert.Empty(t, bookings.created)

	// The same interval on a different court is free.
	resp, err := uc.Execute(context.Background(), &Request{
		Actor:      staffActor(),
		CustomerID: 10,
		CourtID:    2,
		StartTime:  start.Add(30 * time.Minute),
		EndTime:    start.Add(90 * time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.CourtID)
}

func TestCreateBookingIgnoresInactiveBookings(t *testing.T) {
	bookings, _, _, uc := newFixture()

	start := mustTime(t, "2026-03-12T10:00:00Z")
	bookings.existing = []*domain.Booking{
		{ID: 100, CourtID: 1, Status: domain.StatusCancelled,
			StartTime: start, EndTime: start.Add(time.Hour)},
		{ID: 101, CourtID: 1, Status: domain.StatusPending,
			StartTime: start, EndTime: start.Add(time.Hour)},
	}

	// Cancelled and pending bookings hold no claim on the court.
	_, err := uc.Execute(context.Background(), &Request{
		Actor:      staffActor(),
		CustomerID: 10,
		CourtID:    1,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Len(t, bookings.created, 1)
}

func TestCreateBookingInvalidTimeRange(t *testing.T) {
	_, _, _, uc := newFixture()

	start := mustTime(t, "2026-03-12T10:00:00Z")

	for name, end := range map[string]time.Time{
		"end equals start": start,
		"end before start": start.Add(-time.Hour),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				Actor:      staffActor(),
				CustomerID: 10,
				CourtID:    1,
				StartTime:  start,
				EndTime:    end,
			})
			assert.ErrorIs(t, err, ErrInvalidTimeRange)
		})
	}
}

func TestCreateBookingDurationBounds(t *testing.T) {
	_, _, _, uc := newFixture()

	start := mustTime(t, "2026-03-12T10:00:00Z")

	// Shorter than the minimum slot.
	_, err := uc.Execute(context.Background(), &Request{
		Actor:      staffActor(),
		CustomerID: 10,
		CourtID:    1,
		StartTime:  start,
		EndTime:    start.Add(10 * time.Minute),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Longer than the maximum slot.
	_, err = uc.Execute(context.Background(), &Request{
		Actor:      staffActor(),
		CustomerID: 10,
		CourtID:    1,
		StartTime:  start,
		EndTime:    start.Add(9 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateBookingInactiveCourt(t *testing.T) {
	_, _, _, uc := newFixture()

	start := mustTime(t, "2026-03-12T10:00:00Z")
	_, err := uc.Execute(context.Background(), &Request{
		Actor:      staffActor(),
		CustomerID: 10,
		CourtID:    3,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrCourtInactive)
}

func TestCreateBookingCustomerBooksOwnProfile(t *testing.T) {
	bookings, _, _, uc := newFixture()

	start := mustTime(t, "2026-03-12T10:00:00Z")
	resp, err := uc.Execute(context.Background(), &Request{
		Actor:      access.Subject{UserID: 5, Role: access.RoleCustomer},
		CustomerID: 999, // ignored for customer actors
		CourtID:    1,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.CustomerID)
	assert.Len(t, bookings.created, 1)
}

func TestCreateBookingCustomerCannotConfirm(t *testing.T) {
	_, _, _, uc := newFixture()

	start := mustTime(t, "2026-03-12T10:00:00Z")
	confirmed := string(domain.StatusConfirmed)
	_, err := uc.Execute(context.Background(), &Request{
		Actor:     access.Subject{UserID: 5, Role: access.RoleCustomer},
		CourtID:   1,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    &confirmed,
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCreateBookingCourtLocked(t *testing.T) {
	bookings, courts, customers, _ := newFixture()
	uc := NewUseCase(bookings, courts, customers, passthroughTx{}, busyLocker{}, time.Second, 0, nopLogger{})

	start := mustTime(t, "2026-03-12T10:00:00Z")
	_, err := uc.Execute(context.Background(), &Request{
		Actor:      staffActor(),
		CustomerID: 10,
		CourtID:    1,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrCourtBusy)
	assert.Empty(t, bookings.created)
}

func TestCreateBookingWaitsForCourtLock(t *testing.T) {
	bookings, courts, customers, _ := newFixture()
	locker := &contestedLocker{busyFor: 1}
	uc := NewUseCase(bookings, courts, customers, passthroughTx{}, locker, time.Second, time.Second, nopLogger{})

	start := mustTime(t, "2026-03-12T10:00:00Z")
	resp, err := uc.Execute(context.Background(), &Request{
		Actor:      staffActor(),
		CustomerID: 10,
		CourtID:    1,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, 2, locker.attempts)
}

func TestCreateBookingFee(t *testing.T) {
	bookings, _, _, uc := newFixture()

	start := mustTime(t, "2026-03-12T10:00:00Z")

	// Computed from the court's hourly rate.
	resp, err := uc.Execute(context.Background(), &Request{
		Actor:      staffActor(),
		CustomerID: 10,
		CourtID:    1,
		StartTime:  start,
		EndTime:    start.Add(90 * time.Minute),
	})
	require.NoError(t, err)
	assert.InDelta(t, 37.5, resp.Fee, 0.001)

	// Explicit override wins.
	override := 20.0
	resp, err = uc.Execute(context.Background(), &Request{
		Actor:      staffActor(),
		CustomerID: 10,
		CourtID:    2,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Fee:        &override,
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, resp.Fee)
	assert.Len(t, bookings.created, 2)
}

func TestCreateBookingUnknownCustomer(t *testing.T) {
	_, _, _, uc := newFixture()

	start := mustTime(t, "2026-03-12T10:00:00Z")
	_, err := uc.Execute(context.Background(), &Request{
		Actor:      staffActor(),
		CustomerID: 42,
		CourtID:    1,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
