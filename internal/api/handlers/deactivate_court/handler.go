package deactivate_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/courtline/CourtBookingService/internal/api/handlers"
	"github.com/courtline/CourtBookingService/internal/service/courts"
)

const (
	msgInvalidCourtID = "invalid court id"
	msgCourtNotFound  = "court not found"
)

type Handler struct {
	service CourtsService
	logger  Logger
}

func NewHandler(service CourtsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/courts/{id}
//
// Courts are soft-deleted: the row stays for history, the court stops
// accepting new bookings.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	if err := h.service.Deactivate(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			h.logger.Warn("DELETE /courts/{id} - Court not found: court=%d", id)
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("DELETE /courts/{id} - Failed to deactivate court=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /courts/{id} - Court deactivated: court=%d", id)
	handlers.RespondNoContent(w)
}
