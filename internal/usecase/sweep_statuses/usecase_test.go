package sweep_statuses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtline/CourtBookingService/internal/domain"
	"github.com/courtline/CourtBookingService/internal/integrations/notifyservice"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking

	markInProgressErr error
	markCompletedErr  error
	notifiedIDs       []int64
}

func (f *fakeBookingRepo) MarkInProgress(_ context.Context, now time.Time) (int64, error) {
	if f.markInProgressErr != nil {
		return 0, f.markInProgressErr
	}
	var n int64
	for _, b := range f.bookings {
		if b.Status == domain.StatusConfirmed && !b.StartTime.After(now) && b.EndTime.After(now) {
			b.Status = domain.StatusInProgress
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) MarkCompleted(_ context.Context, now time.Time) (int64, error) {
	if f.markCompletedErr != nil {
		return 0, f.markCompletedErr
	}
	var n int64
	for _, b := range f.bookings {
		if b.Status == domain.StatusInProgress && !b.EndTime.After(now) {
			b.Status = domain.StatusCompleted
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) ListEndingSoon(_ context.Context, now, threshold time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.Status == domain.StatusInProgress && !b.Notified &&
			b.EndTime.After(now) && !b.EndTime.After(threshold) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) MarkNotified(_ context.Context, id int64) error {
	f.notifiedIDs = append(f.notifiedIDs, id)
	for _, b := range f.bookings {
		if b.ID == id {
			b.Notified = true
		}
	}
	return nil
}

type fakeCourtRepo struct{}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	return &domain.Court{ID: id, Name: "Court A", Active: true}, nil
}

type fakeNotifyClient struct {
	sent    []*notifyservice.Notification
	sendErr error
}

func (f *fakeNotifyClient) Send(_ context.Context, n *notifyservice.Notification) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, n)
	return nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

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

func newSweep(repo *fakeBookingRepo, notify *fakeNotifyClient, now time.Time) *UseCase {
	return NewUseCase(repo, &fakeCourtRepo{}, notify, &fixedTime{now: now}, 15*time.Minute, nopLogger{})
}

func TestSweepProgression(t *testing.T) {
	now := mustTime(t, "2026-03-10T12:00:00Z")

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		// Confirmed and currently inside its slot: starts.
		{ID: 1, Status: domain.StatusConfirmed,
			StartTime: now.Add(-30 * time.Minute), EndTime: now.Add(time.Hour)},
		// Confirmed but in the future: untouched.
		{ID: 2, Status: domain.StatusConfirmed,
			StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour)},
		// In progress and past its end: completes.
		{ID: 3, Status: domain.StatusInProgress,
			StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Minute)},
		// Pending bookings never move.
		{ID: 4, Status: domain.StatusPending,
			StartTime: now.Add(-30 * time.Minute), EndTime: now.Add(time.Hour)},
		// Cancelled bookings never move.
		{ID: 5, Status: domain.StatusCancelled,
			StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour)},
	}}

	uc := newSweep(repo, &fakeNotifyClient{}, now)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Started)
	assert.Equal(t, int64(1), result.Completed)
	assert.Equal(t, int64(2), result.Total())

	assert.Equal(t, domain.StatusInProgress, repo.bookings[0].Status)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)
	assert.Equal(t, domain.StatusCompleted, repo.bookings[2].Status)
	assert.Equal(t, domain.StatusPending, repo.bookings[3].Status)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[4].Status)
}

func TestSweepSkipsElapsedConfirmed(t *testing.T) {
	now := mustTime(t, "2026-03-10T12:00:00Z")

	// The whole slot elapsed while the booking sat confirmed. The start
	// step requires now < end, so the booking stays confirmed rather
	// than being marked in_progress for a slot that is already over.
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, Status: domain.StatusConfirmed,
			StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour)},
	}}

	uc := newSweep(repo, &fakeNotifyClient{}, now)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, repo.bookings[0].Status)
	assert.Equal(t, int64(0), result.Total())
}

func TestSweepIsIdempotent(t *testing.T) {
	now := mustTime(t, "2026-03-10T12:00:00Z")

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, Status: domain.StatusConfirmed,
			StartTime: now.Add(-30 * time.Minute), EndTime: now.Add(2 * time.Hour)},
		{ID: 2, Status: domain.StatusInProgress,
			StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Minute)},
	}}

	uc := newSweep(repo, &fakeNotifyClient{}, now)

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.Total())

	second, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.Total())

	assert.Equal(t, domain.StatusInProgress, repo.bookings[0].Status)
	assert.Equal(t, domain.StatusCompleted, repo.bookings[1].Status)
}

func TestSweepNotifiesEndingSoon(t *testing.T) {
	now := mustTime(t, "2026-03-10T12:00:00Z")

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		// Ends in 10 minutes, inside the 15-minute window.
		{ID: 1, CustomerID: 7, CourtID: 3, Status: domain.StatusInProgress,
			StartTime: now.Add(-time.Hour), EndTime: now.Add(10 * time.Minute)},
		// Ends in an hour: outside the window.
		{ID: 2, CustomerID: 8, CourtID: 3, Status: domain.StatusInProgress,
			StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
		// Already notified.
		{ID: 3, CustomerID: 9, CourtID: 3, Status: domain.StatusInProgress, Notified: true,
			StartTime: now.Add(-time.Hour), EndTime: now.Add(5 * time.Minute)},
	}}
	notify := &fakeNotifyClient{}

	uc := newSweep(repo, notify, now)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Notified)
	require.Len(t, notify.sent, 1)
	assert.Equal(t, notifyservice.KindBookingEndingSoon, notify.sent[0].Kind)
	assert.Equal(t, int64(7), notify.sent[0].CustomerID)
	assert.Equal(t, "Court A", notify.sent[0].CourtName)
	assert.Equal(t, []int64{1}, repo.notifiedIDs)
}

func TestSweepNotifyFailureDoesNotFailRun(t *testing.T) {
	now := mustTime(t, "2026-03-10T12:00:00Z")

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, CustomerID: 7, CourtID: 3, Status: domain.StatusInProgress,
			StartTime: now.Add(-time.Hour), EndTime: now.Add(10 * time.Minute)},
	}}
	notify := &fakeNotifyClient{sendErr: errors.New("connection refused")}

	uc := newSweep(repo, notify, now)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.Notified)
	// Stays unnotified so the next run retries.
	assert.False(t, repo.bookings[0].Notified)
	assert.Empty(t, repo.notifiedIDs)
}

func TestSweepStepFailure(t *testing.T) {
	now := mustTime(t, "2026-03-10T12:00:00Z")

	repo := &fakeBookingRepo{markInProgressErr: errors.New("db down")}

	uc := newSweep(repo, &fakeNotifyClient{}, now)

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
