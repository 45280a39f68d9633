package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/courtline/CourtBookingService/internal/api/handlers"
	"github.com/courtline/CourtBookingService/internal/api/middleware"
	updateBooking "github.com/courtline/CourtBookingService/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidTimeRange   = "end time must be after start time"
	msgCourtNotAvailable  = "court already booked for this period"
	msgBookingNotFound    = "booking not found"
	msgCourtNotFound      = "court not found"
	msgCourtInactive      = "court is not active"
	msgCourtBusy          = "court is busy, please retry"
	msgTerminalStatus     = "booking is cancelled or completed"
	msgInvalidStatus      = "invalid booking status"
	msgAccessDenied       = "access denied"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{id}
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

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor, id))
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrInvalidTimeRange):
			h.logger.Warn("PUT /bookings/{id} - Invalid time range: booking=%d", id)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, updateBooking.ErrCourtNotAvailable):
			h.logger.Warn("PUT /bookings/{id} - Court not available: booking=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgCourtNotAvailable)

		case errors.Is(err, updateBooking.ErrCourtBusy):
			h.logger.Warn("PUT /bookings/{id} - Court busy: booking=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgCourtBusy)

		case errors.Is(err, updateBooking.ErrCourtNotFound):
			h.logger.Warn("PUT /bookings/{id} - Court not found: booking=%d", id)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, updateBooking.ErrCourtInactive):
			h.logger.Warn("PUT /bookings/{id} - Court inactive: booking=%d", id)
			handlers.RespondBadRequest(w, msgCourtInactive)

		case errors.Is(err, updateBooking.ErrTerminalStatus):
			h.logger.Warn("PUT /bookings/{id} - Terminal status: booking=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgTerminalStatus)

		case errors.Is(err, updateBooking.ErrInvalidStatus):
			h.logger.Warn("PUT /bookings/{id} - Invalid status: booking=%d", id)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id} - Access denied: user=%d booking=%d", actor.UserID, id)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated: booking=%d user=%d", id, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
