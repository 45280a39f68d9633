package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return ts
}

func TestBookingOverlaps(t *testing.T) {
	booking := &Booking{
		StartTime: mustTime(t, "2025-01-01T10:00:00Z"),
		EndTime:   mustTime(t, "2025-01-01T11:00:00Z"),
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"contained", "2025-01-01T10:15:00Z", "2025-01-01T10:45:00Z", true},
		{"overlaps tail", "2025-01-01T10:30:00Z", "2025-01-01T11:30:00Z", true},
		{"overlaps head", "2025-01-01T09:30:00Z", "2025-01-01T10:30:00Z", true},
		{"covers", "2025-01-01T09:00:00Z", "2025-01-01T12:00:00Z", true},
		{"back to back after", "2025-01-01T11:00:00Z", "2025-01-01T12:00:00Z", false},
		{"back to back before", "2025-01-01T09:00:00Z", "2025-01-01T10:00:00Z", false},
		{"disjoint", "2025-01-01T12:00:00Z", "2025-01-01T13:00:00Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.Overlaps(mustTime(t, tt.start), mustTime(t, tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusInProgress}).IsActive())
	assert.False(t, (&Booking{Status: StatusPending}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsActive())
}

func TestBookingIsTerminal(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCancelled}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusConfirmed}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusInProgress}).IsTerminal())
}

func TestBookingGuardPredicates(t *testing.T) {
	now := mustTime(t, "2025-06-01T12:00:00Z")

	paid := &Booking{PaymentStatus: PaymentPaid, StartTime: now.Add(time.Hour)}
	assert.True(t, paid.IsPaid())
	assert.False(t, paid.HasStarted(now))

	past := &Booking{PaymentStatus: PaymentPending, StartTime: now.Add(-time.Hour)}
	assert.False(t, past.IsPaid())
	assert.True(t, past.HasStarted(now))
}

func TestBookingDurationHours(t *testing.T) {
	b := &Booking{
		StartTime: mustTime(t, "2025-01-01T10:00:00Z"),
		EndTime:   mustTime(t, "2025-01-01T11:30:00Z"),
	}
	assert.InDelta(t, 1.5, b.DurationHours(), 1e-9)
}
