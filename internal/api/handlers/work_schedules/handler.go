package work_schedules

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/courtline/CourtBookingService/internal/api/handlers"
	"github.com/courtline/CourtBookingService/internal/service/timesheet"
	"github.com/courtline/CourtBookingService/internal/service/timesheet/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidQuery       = "invalid query parameters; employeeId, from and to are required"
	msgInvalidPeriod      = "period end must be after period start"
	msgEmployeeNotFound   = "employee not found"
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

// HandleCreate POST /api/v1/schedules
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateSchedule(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, timesheet.ErrEmployeeNotFound):
			h.logger.Warn("POST /schedules - Employee not found: employee=%d", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, timesheet.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: employee=%d, error=%v", req.EmployeeID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /schedules - Failed to create schedule: employee=%d, error=%v",
				req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Schedule created: schedule=%d employee=%d", result.ID, result.EmployeeID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/schedules?employeeId=...&from=...&to=...
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	employeeID, err := strconv.ParseInt(q.Get("employeeId"), 10, 64)
	if err != nil || employeeID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}
	from, err := time.Parse(time.RFC3339, q.Get("from"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}
	to, err := time.Parse(time.RFC3339, q.Get("to"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.ListSchedules(r.Context(), employeeID, from, to)
	if err != nil {
		if errors.Is(err, timesheet.ErrInvalidPeriod) {
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /schedules - Failed to list schedules: employee=%d, error=%v", employeeID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
