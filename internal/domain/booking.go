package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking represents one reservation of one court by one customer for
// a half-open time interval [StartTime, EndTime).
type Booking struct {
	ID            int64
	CustomerID    int64
	CourtID       int64
	StartTime     time.Time
	EndTime       time.Time
	Status        BookingStatus
	Fee           float64
	PaymentStatus PaymentStatus
	Notes         *string
	Notified      bool

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks overlapping reservations
// on the same court.
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed || b.Status == StatusInProgress
}

// IsCancelled returns true if the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsTerminal returns true if the booking can never change status again.
func (b *Booking) IsTerminal() bool {
	for _, status := range TerminalStatuses {
		if b.Status == status {
			return true
		}
	}
	return false
}

// IsPaid returns true if the booking has been paid for.
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentPaid
}

// HasStarted returns true if the booking's start time is in the past.
func (b *Booking) HasStarted(now time.Time) bool {
	return b.StartTime.Before(now)
}

// Overlaps reports whether the booking's interval overlaps [start, end).
// Strict inequalities: back-to-back bookings share an instant but do
// not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// DurationHours returns the booked interval length in hours.
func (b *Booking) DurationHours() float64 {
	return b.EndTime.Sub(b.StartTime).Hours()
}

// BookingsFilter narrows booking list queries. Zero-valued optional
// fields are ignored.
type BookingsFilter struct {
	CustomerID      *int64
	CourtID         *int64
	StartDate       *time.Time // Bookings starting at or after this instant
	EndDate         *time.Time // Bookings starting before this instant
	Status          *BookingStatus
	IncludeInactive bool // Include pending, cancelled and completed bookings
}
