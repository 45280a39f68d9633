package notifyservice

import "errors"

var (
	// ErrRecipientUnknown is returned when the notification service has
	// no deliverable address for the customer.
	ErrRecipientUnknown = errors.New("notifyservice client: recipient unknown")

	// ErrInternal is returned on internal client errors.
	ErrInternal = errors.New("notifyservice client: internal error")

	// ErrInvalidResponse is returned on unexpected responses from the service.
	ErrInvalidResponse = errors.New("notifyservice client: invalid response")
)
