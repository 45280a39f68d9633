package employees

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/courtline/CourtBookingService/internal/api/handlers"
	employeesService "github.com/courtline/CourtBookingService/internal/service/employees"
	"github.com/courtline/CourtBookingService/internal/service/employees/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEmployeeID  = "invalid employee id"
	msgEmployeeNotFound   = "employee not found"
)

type Handler struct {
	service EmployeesService
	logger  Logger
}

func NewHandler(service EmployeesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/employees
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, employeesService.ErrInvalidInput):
			h.logger.Warn("POST /employees - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /employees - Failed to create employee: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /employees - Employee created: employee=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/employees
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /employees - Failed to list employees: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/employees/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, employeesService.ErrEmployeeNotFound):
			h.logger.Warn("GET /employees/{id} - Employee not found: employee=%d", id)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		default:
			h.logger.Error("GET /employees/{id} - Failed to fetch employee=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
