package notifyservice

// NotificationKind identifies the template the notification service renders.
type NotificationKind string

const (
	KindBookingEndingSoon NotificationKind = "booking_ending_soon"
	KindBookingCancelled  NotificationKind = "booking_cancelled"
	KindBookingConfirmed  NotificationKind = "booking_confirmed"
)

// Notification is the payload posted to the notification service.
type Notification struct {
	Kind       NotificationKind `json:"kind"`
	CustomerID int64            `json:"customerId"`
	BookingID  int64            `json:"bookingId"`
	CourtName  string           `json:"courtName,omitempty"`
	EndTime    string           `json:"endTime,omitempty"` // RFC 3339
	Message    string           `json:"message,omitempty"`
}
