package bookings_report

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/courtline/CourtBookingService/internal/api/handlers"
	"github.com/courtline/CourtBookingService/internal/service/reports"
	"github.com/courtline/CourtBookingService/internal/service/reports/models"
)

const (
	msgInvalidQuery  = "invalid query parameters; from and to are required RFC 3339 timestamps"
	msgInvalidPeriod = "period end must be after period start"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/bookings?from=...&to=...&courtId=...
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

	req := &models.BookingsSummaryRequest{From: from, To: to}
	if v := q.Get("courtId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.CourtID = &id
	}

	result, err := h.service.BookingsSummary(r.Context(), req)
	if err != nil {
		if errors.Is(err, reports.ErrInvalidPeriod) {
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /reports/bookings - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
