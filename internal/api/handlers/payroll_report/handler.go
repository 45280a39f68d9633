package payroll_report

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
	msgInvalidQuery     = "invalid query parameters; from and to are required RFC 3339 timestamps"
	msgInvalidPeriod    = "period end must be after period start"
	msgEmployeeNotFound = "employee not found"
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

// Handle GET /api/v1/reports/payroll?from=...&to=...&employeeId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

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

	req := &models.PayrollRequest{From: from, To: to}
	if v := q.Get("employeeId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.EmployeeID = &id
	}

	result, err := h.service.Payroll(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, timesheet.ErrInvalidPeriod):
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, timesheet.ErrEmployeeNotFound):
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		default:
			h.logger.Error("GET /reports/payroll - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
