package domain

// Default configuration values
const (
	DefaultSweepIntervalSeconds = 120
	DefaultEndingNoticeMinutes  = 15
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxBookingDurationHours     = 8
	MinBookingDurationMinutes   = 15
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses are the booking statuses that block new overlapping
// reservations on the same court. Pending, cancelled and completed
// bookings do not block.
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusInProgress,
}

// TerminalStatuses are the statuses a booking can never leave.
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
