package bulk_delete_bookings

import (
	"errors"
	"net/http"

	"github.com/jalelchniti/smarthub-booking/internal/api/handlers"
	"github.com/jalelchniti/smarthub-booking/internal/api/middleware"
	"github.com/jalelchniti/smarthub-booking/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgEmptyIDList        = "liste d'identifiants vide"
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

// BulkDeleteRequest HTTP request model.
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// Handle POST /api/v1/admin/bookings/bulk-delete
//
// Partial success is reported per id with status 200; the applied
// deletes are not rolled back.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings/bulk-delete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.BulkDelete(r.Context(), req.IDs)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /admin/bookings/bulk-delete - Empty id list")
			handlers.RespondBadRequest(w, msgEmptyIDList)

		default:
			h.logger.Error("POST /admin/bookings/bulk-delete - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	admin := "unknown"
	if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
		admin = claims.Username
	}
	h.logger.Info("POST /admin/bookings/bulk-delete - Deleted %d/%d bookings admin=%s",
		result.Deleted, len(req.IDs), admin)
	handlers.RespondJSON(w, http.StatusOK, result)
}
