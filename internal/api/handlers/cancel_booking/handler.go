package cancel_booking

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/courtline/CourtBookingService/internal/api/handlers"
	"github.com/courtline/CourtBookingService/internal/api/middleware"
	"github.com/courtline/CourtBookingService/internal/service/bookings"
	"github.com/courtline/CourtBookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgBookingNotFound    = "booking not found"
	msgBookingPaid        = "paid booking cannot be cancelled; refund it first"
	msgBookingInPast      = "booking that has started cannot be cancelled"
	msgAlreadyCancelled   = "booking is already cancelled"
	msgAccessDenied       = "access denied"
)

type cancelBody struct {
	CancellationReason string `json:"cancellationReason"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Body is optional; a bare POST cancels without a reason.
	var body cancelBody
	if err := handlers.DecodeJSON(r, &body); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Cancel(r.Context(), id, &models.CancelBookingRequest{
		Actor:  actor,
		Reason: body.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/cancel - Invalid input: booking=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/cancel - Booking not found: booking=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrBookingPaid):
			h.logger.Warn("POST /bookings/{id}/cancel - Booking paid: booking=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgBookingPaid)

		case errors.Is(err, bookings.ErrBookingInPast):
			h.logger.Warn("POST /bookings/{id}/cancel - Booking in past: booking=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgBookingInPast)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("POST /bookings/{id}/cancel - Already cancelled: booking=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/cancel - Access denied: user=%d booking=%d", actor.UserID, id)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /bookings/{id}/cancel - Failed to cancel booking=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Booking cancelled: booking=%d user=%d", id, actor.UserID)
	handlers.RespondNoContent(w)
}
