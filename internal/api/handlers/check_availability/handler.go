package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/jalelchniti/smarthub-booking/internal/api/handlers"
	"github.com/jalelchniti/smarthub-booking/internal/domain"
	checkAvailability "github.com/jalelchniti/smarthub-booking/internal/usecase/check_availability"
	"github.com/jalelchniti/smarthub-booking/pkg/types"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidDate        = "format de date invalide, attendu YYYY-MM-DD"
	msgInvalidTime        = "format d'heure invalide, attendu HH:MM"
	msgInvalidDuration    = "durée de créneau invalide"
	msgRoomNotFound       = "salle introuvable"
	msgInvalidInput       = "paramètres de disponibilité invalides"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?date=&startTime=&duration=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startSlot, err := types.NewTimeStringFromString(query.Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	duration, err := strconv.ParseFloat(query.Get("duration"), 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		RoomID:        roomID,
		Date:          date,
		StartSlot:     startSlot,
		DurationHours: duration,
	})
	if err != nil {
		h.respondUseCaseError(w, r, err, roomID)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandleBatch POST /api/v1/rooms/{roomId}/availability/batch
func (h *Handler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	var req BatchCheckRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{id}/availability/batch - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/availability/batch - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots := make([]types.TimeString, 0, len(req.Slots))
	for _, raw := range req.Slots {
		slot, err := types.NewTimeStringFromString(raw)
		if err != nil {
			h.logger.Warn("POST /rooms/{id}/availability/batch - Invalid slot %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		slots = append(slots, slot)
	}

	result, err := h.useCase.ExecuteBatch(r.Context(), &checkAvailability.BatchRequest{
		RoomID:        roomID,
		Date:          date,
		Slots:         slots,
		DurationHours: req.Duration,
	})
	if err != nil {
		h.respondUseCaseError(w, r, err, roomID)
		return
	}

	h.logger.Info("POST /rooms/{id}/availability/batch - room=%s checked=%d available=%d",
		roomID, result.Total, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseBatchResponse(result))
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, r *http.Request, err error, roomID string) {
	switch {
	case errors.Is(err, checkAvailability.ErrRoomNotFound):
		h.logger.Warn("%s %s - Room not found: room=%s", r.Method, r.URL.Path, roomID)
		handlers.RespondNotFound(w, msgRoomNotFound)

	case errors.Is(err, checkAvailability.ErrInvalidInput):
		h.logger.Warn("%s %s - Invalid input: room=%s error=%v", r.Method, r.URL.Path, roomID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s %s - Availability check failed: room=%s error=%v",
			r.Method, r.URL.Path, roomID, err)
		handlers.RespondInternalError(w)
	}
}
