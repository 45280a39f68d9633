package domain

import "time"

// Court is a reservable resource. Deactivation is a soft delete: a
// court row is never removed once bookings reference it.
type Court struct {
	ID          int64
	Name        string
	Description *string
	HourlyRate  float64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FeeFor returns the fee for booking this court over [start, end).
func (c *Court) FeeFor(duration time.Duration) float64 {
	return c.HourlyRate * duration.Hours()
}
