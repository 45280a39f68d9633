package domain

import "time"

// Customer is a registered player able to reserve courts.
type Customer struct {
	ID             int64
	UserID         *int64 // Auth subject this profile belongs to, if linked
	Name           string
	Email          *string
	Phone          string
	Address        *string
	MembershipDate time.Time
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
