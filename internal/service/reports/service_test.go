package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtline/CourtBookingService/internal/domain"
	"github.com/courtline/CourtBookingService/internal/service/reports/models"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if filter.CourtID != nil && b.CourtID != *filter.CourtID {
			continue
		}
		if filter.StartDate != nil && b.StartTime.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && !b.StartTime.Before(*filter.EndDate) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(t *testing.T, s string, hour int) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d.Add(time.Duration(hour) * time.Hour)
}

func TestBookingsSummary(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, CourtID: 1, StartTime: day(t, "2026-03-01", 10), Status: domain.StatusCompleted,
			Fee: 40, PaymentStatus: domain.PaymentPaid},
		{ID: 2, CourtID: 1, StartTime: day(t, "2026-03-01", 12), Status: domain.StatusCancelled,
			Fee: 40, PaymentStatus: domain.PaymentPending},
		{ID: 3, CourtID: 2, StartTime: day(t, "2026-03-02", 9), Status: domain.StatusCompleted,
			Fee: 60, PaymentStatus: domain.PaymentPaid},
	}}

	svc := NewService(repo, nopLogger{})

	resp, err := svc.BookingsSummary(context.Background(), &models.BookingsSummaryRequest{
		From: day(t, "2026-03-01", 0),
		To:   day(t, "2026-03-08", 0),
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 2)
	assert.Equal(t, "2026-03-01", resp.Days[0].Date)
	assert.Equal(t, 2, resp.Days[0].Total)
	assert.Equal(t, 1, resp.Days[0].Completed)
	assert.Equal(t, 1, resp.Days[0].Cancelled)
	assert.InDelta(t, 40.0, resp.Days[0].Revenue, 1e-9)

	assert.Equal(t, "2026-03-02", resp.Days[1].Date)
	assert.InDelta(t, 60.0, resp.Days[1].Revenue, 1e-9)

	assert.Equal(t, 3, resp.TotalCount)
	assert.InDelta(t, 100.0, resp.TotalRevenue, 1e-9)
}

func TestBookingsSummaryCourtFilter(t *testing.T) {
	courtID := int64(2)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, CourtID: 1, StartTime: day(t, "2026-03-01", 10), Status: domain.StatusCompleted},
		{ID: 2, CourtID: 2, StartTime: day(t, "2026-03-01", 12), Status: domain.StatusCompleted},
	}}

	svc := NewService(repo, nopLogger{})

	resp, err := svc.BookingsSummary(context.Background(), &models.BookingsSummaryRequest{
		From:    day(t, "2026-03-01", 0),
		To:      day(t, "2026-03-08", 0),
		CourtID: &courtID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
}

func TestBookingsSummaryInvalidPeriod(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.BookingsSummary(context.Background(), &models.BookingsSummaryRequest{
		From: day(t, "2026-03-08", 0),
		To:   day(t, "2026-03-01", 0),
	})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
