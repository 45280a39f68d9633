package create_booking

import (
	"fmt"
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
)

// validateRequest checks the request shape. The interval-order rule is
// part of the conflict guard contract: end must be strictly after start.
func validateRequest(req *Request) error {
	if req.Actor.UserID <= 0 {
		return fmt.Errorf("%w: actor userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return ErrInvalidTimeRange
	}

	duration := req.EndTime.Sub(req.StartTime)
	if duration < domain.MinBookingDurationMinutes*time.Minute {
		return fmt.Errorf("%w: booking must last at least %d minutes",
			ErrInvalidInput, domain.MinBookingDurationMinutes)
	}
	if duration > domain.MaxBookingDurationHours*time.Hour {
		return fmt.Errorf("%w: booking must not exceed %d hours",
			ErrInvalidInput, domain.MaxBookingDurationHours)
	}

	if req.Fee != nil && *req.Fee < 0 {
		return fmt.Errorf("%w: fee must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// initialStatus resolves the requested initial status. Bookings start
// pending unless staff confirm them at creation time.
func initialStatus(req *Request) (domain.BookingStatus, error) {
	if req.Status == nil {
		return domain.StatusPending, nil
	}

	switch domain.BookingStatus(*req.Status) {
	case domain.StatusPending:
		return domain.StatusPending, nil
	case domain.StatusConfirmed:
		if !req.Actor.IsStaff() {
			return "", ErrInvalidStatus
		}
		return domain.StatusConfirmed, nil
	default:
		return "", ErrInvalidStatus
	}
}
