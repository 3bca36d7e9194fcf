package create_booking

import (
	"errors"
	"net/http"

	"github.com/jalelchniti/smarthub-booking/internal/api/handlers"
	createBooking "github.com/jalelchniti/smarthub-booking/internal/usecase/create_booking"
	"github.com/jalelchniti/smarthub-booking/pkg/types"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidDate        = "format de date invalide, attendu YYYY-MM-DD"
	msgInvalidTime        = "format d'heure invalide, attendu HH:MM"
	msgRoomNotFound       = "salle introuvable"
	msgInvalidDuration    = "durée de créneau invalide (1.5 à 3 heures, par pas de 0.5)"
	msgInvalidBookingDate = "date de réservation invalide"
	msgSlotConflict       = "créneau indisponible, horaires déjà réservés"
	msgNotEnoughSlots     = "pas assez de créneaux consécutifs avant la fermeture"
	msgInvalidInput       = "données de réservation invalides"
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
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: room=%s date=%s slot=%s",
				req.RoomID, req.Date, req.TimeSlot)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: room=%s duration=%.1f",
				req.RoomID, req.Duration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: room=%s date=%s", req.RoomID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrNotEnoughSlots):
			h.logger.Warn("POST /bookings - Not enough slots: room=%s date=%s slot=%s duration=%.1f",
				req.RoomID, req.Date, req.TimeSlot, req.Duration)
			handlers.RespondBadRequest(w, msgNotEnoughSlots)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: room=%s error=%v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room=%s date=%s error=%v",
				req.RoomID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d room=%s date=%s slot=%s",
		result.ID, req.RoomID, req.Date, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
