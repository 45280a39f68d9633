package record_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/courtline/CourtBookingService/internal/api/handlers"
	"github.com/courtline/CourtBookingService/internal/api/middleware"
	"github.com/courtline/CourtBookingService/internal/service/payments"
	"github.com/courtline/CourtBookingService/internal/service/payments/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgBookingNotFound    = "booking not found"
	msgBookingNotActive   = "booking cannot take payment in its current status"
	msgAlreadyPaid        = "booking is already paid"
	msgAmountMismatch     = "payment amount does not match booking fee"
)

type paymentBody struct {
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	TransactionID *string `json:"transactionId,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type Handler struct {
	service PaymentsService
	logger  Logger
}

func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleRecord POST /api/v1/bookings/{id}/payments
func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var body paymentBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /bookings/{id}/payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Record(r.Context(), &models.RecordPaymentRequest{
		Actor:         actor,
		BookingID:     bookingID,
		Amount:        body.Amount,
		Method:        body.Method,
		TransactionID: body.TransactionID,
		Notes:         body.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/payments - Booking not found: booking=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, payments.ErrAlreadyPaid):
			h.logger.Warn("POST /bookings/{id}/payments - Already paid: booking=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyPaid)

		case errors.Is(err, payments.ErrBookingNotActive):
			h.logger.Warn("POST /bookings/{id}/payments - Booking not active: booking=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgBookingNotActive)

		case errors.Is(err, payments.ErrAmountMismatch):
			h.logger.Warn("POST /bookings/{id}/payments - Amount mismatch: booking=%d amount=%.2f",
				bookingID, body.Amount)
			handlers.RespondBadRequest(w, msgAmountMismatch)

		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/payments - Invalid input: booking=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/{id}/payments - Failed to record payment: booking=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/payments - Payment recorded: payment=%d booking=%d by user=%d",
		result.ID, bookingID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/bookings/{id}/payments
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.ListByBooking(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, payments.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidBookingID)
			return
		}
		h.logger.Error("GET /bookings/{id}/payments - Failed to list payments: booking=%d, error=%v",
			bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
