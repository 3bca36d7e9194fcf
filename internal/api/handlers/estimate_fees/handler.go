package estimate_fees

import (
	"errors"
	"net/http"

	"github.com/jalelchniti/smarthub-booking/internal/api/handlers"
	"github.com/jalelchniti/smarthub-booking/internal/domain"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgRoomNotFound       = "salle introuvable"
	msgInvalidDuration    = "durée de créneau invalide (1.5 à 3 heures, par pas de 0.5)"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle POST /api/v1/fees/estimate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EstimateFeesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fees/estimate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	fees, err := domain.CalculateSessionFees(
		req.RoomID, req.StudentCount, req.Duration, req.CreneauCount, req.DeclaredRevenue)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			h.logger.Warn("POST /fees/estimate - Room not found: room=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, domain.ErrInvalidDuration):
			h.logger.Warn("POST /fees/estimate - Invalid duration: room=%s duration=%.1f count=%d",
				req.RoomID, req.Duration, req.CreneauCount)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("POST /fees/estimate - Estimation failed: room=%s error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainSessionFees(fees))
}
