package domain

import "time"

// PaymentMethod enumerates accepted payment channels.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodCard   PaymentMethod = "card"
	MethodOnline PaymentMethod = "online"
	MethodOther  PaymentMethod = "other"
)

// Payment records money received for a booking.
type Payment struct {
	ID            int64
	BookingID     int64
	Amount        float64
	Method        PaymentMethod
	TransactionID *string
	Notes         *string
	ProcessedBy   *int64 // Staff user who took the payment, if any
	PaymentDate   time.Time
}
