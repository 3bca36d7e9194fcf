package booking_summary

import (
	"errors"
	"net/http"

	"github.com/jalelchniti/smarthub-booking/internal/api/handlers"
	"github.com/jalelchniti/smarthub-booking/internal/service/admin"
)

const (
	msgInvalidFilter = "filtres de recherche invalides"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := handlers.ParseBookingFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/summary - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	summary, err := h.service.Summarize(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidInput):
			h.logger.Warn("GET /admin/summary - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/summary - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}
