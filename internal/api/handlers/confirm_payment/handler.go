package confirm_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jalelchniti/smarthub-booking/internal/api/handlers"
	"github.com/jalelchniti/smarthub-booking/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "identifiant de réservation invalide"
	msgInvalidRequestBody = "corps de requête invalide"
	msgNotFound           = "réservation introuvable"
	msgIllegalTransition  = "cette réservation ne peut pas être marquée payée"
	msgInvalidMethod      = "méthode de paiement invalide"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ConfirmPaymentRequest HTTP request model. TransactionID is the
// provider reference; online payments without one get a generated id.
type ConfirmPaymentRequest struct {
	Method        string  `json:"method"` // "online" | "offline"
	TransactionID *string `json:"transactionId,omitempty"`
}

// Handle POST /api/v1/admin/bookings/{bookingId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/payment - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ConfirmPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.ConfirmPayment(r.Context(), bookingID, req.Method, req.TransactionID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /admin/bookings/{id}/payment - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrIllegalTransition):
			h.logger.Warn("POST /admin/bookings/{id}/payment - Illegal transition: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgIllegalTransition)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /admin/bookings/{id}/payment - Invalid method: booking_id=%d method=%s",
				bookingID, req.Method)
			handlers.RespondBadRequest(w, msgInvalidMethod)

		default:
			h.logger.Error("POST /admin/bookings/{id}/payment - Failed: booking_id=%d error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/{id}/payment - Payment confirmed: booking_id=%d method=%s",
		bookingID, req.Method)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
