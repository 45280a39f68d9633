package timeclock

import (
	"context"
	"errors"
	"net/http"

	"github.com/courtline/CourtBookingService/internal/api/handlers"
	"github.com/courtline/CourtBookingService/internal/service/timesheet"
	"github.com/courtline/CourtBookingService/internal/service/timesheet/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmployeeNotFound   = "employee not found"
	msgAlreadyClockedIn   = "employee already has an open shift"
	msgNotClockedIn       = "employee has no open shift"
)

type Handler struct {
	service TimesheetService
	logger  Logger
}

func NewHandler(service TimesheetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleClockIn POST /api/v1/timeclock/in
func (h *Handler) HandleClockIn(w http.ResponseWriter, r *http.Request) {
	h.punch(w, r, "POST /timeclock/in", h.service.ClockIn)
}

// HandleClockOut POST /api/v1/timeclock/out
func (h *Handler) HandleClockOut(w http.ResponseWriter, r *http.Request) {
	h.punch(w, r, "POST /timeclock/out", h.service.ClockOut)
}

func (h *Handler) punch(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	op func(ctx context.Context, req *models.ClockRequest) (*models.TimeEntryResponse, error),
) {
	var req models.ClockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := op(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, timesheet.ErrEmployeeNotFound):
			h.logger.Warn("%s - Employee not found: employee=%d", route, req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, timesheet.ErrAlreadyClockedIn):
			h.logger.Warn("%s - Already clocked in: employee=%d", route, req.EmployeeID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyClockedIn)

		case errors.Is(err, timesheet.ErrNotClockedIn):
			h.logger.Warn("%s - Not clocked in: employee=%d", route, req.EmployeeID)
			handlers.RespondError(w, http.StatusConflict, msgNotClockedIn)

		default:
			h.logger.Error("%s - Failed: employee=%d, error=%v", route, req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - OK: entry=%d employee=%d", route, result.ID, result.EmployeeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
