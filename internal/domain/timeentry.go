package domain

import "time"

// TimeEntry is one staff clock-in/clock-out pair. ClockOut is nil
// while the shift is still open.
type TimeEntry struct {
	ID         int64
	EmployeeID int64
	ClockIn    time.Time
	ClockOut   *time.Time
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOpen returns true while the employee has not clocked out.
func (t *TimeEntry) IsOpen() bool {
	return t.ClockOut == nil
}

// DurationHours returns the worked hours, zero for open entries.
func (t *TimeEntry) DurationHours() float64 {
	if t.ClockOut == nil {
		return 0
	}
	return t.ClockOut.Sub(t.ClockIn).Hours()
}

// Pay returns the pay owed for this entry at the given hourly rate.
func (t *TimeEntry) Pay(hourlyRate float64) float64 {
	return t.DurationHours() * hourlyRate
}
