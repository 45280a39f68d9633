package create_booking

import (
	"errors"
	"net/http"

	"github.com/courtline/CourtBookingService/internal/api/handlers"
	"github.com/courtline/CourtBookingService/internal/api/middleware"
	createBooking "github.com/courtline/CourtBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTimeRange   = "end time must be after start time"
	msgCourtNotAvailable  = "court already booked for this period"
	msgCourtNotFound      = "court not found"
	msgCourtInactive      = "court is not active"
	msgCustomerNotFound   = "customer not found"
	msgCourtBusy          = "court is busy, please retry"
	msgInvalidStatus      = "invalid initial status"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: user=%d court=%d", actor.UserID, req.CourtID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrCourtNotAvailable):
			h.logger.Warn("POST /bookings - Court not available: user=%d court=%d", actor.UserID, req.CourtID)
			handlers.RespondError(w, http.StatusConflict, msgCourtNotAvailable)

		case errors.Is(err, createBooking.ErrCourtBusy):
			h.logger.Warn("POST /bookings - Court busy: user=%d court=%d", actor.UserID, req.CourtID)
			handlers.RespondError(w, http.StatusConflict, msgCourtBusy)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrCourtInactive):
			h.logger.Warn("POST /bookings - Court inactive: court=%d", req.CourtID)
			handlers.RespondBadRequest(w, msgCourtInactive)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: user=%d", actor.UserID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrInvalidStatus):
			h.logger.Warn("POST /bookings - Invalid initial status: user=%d", actor.UserID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%d court=%d, error=%v",
				actor.UserID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking=%d user=%d court=%d",
		result.ID, actor.UserID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
