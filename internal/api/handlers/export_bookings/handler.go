package export_bookings

import (
	"errors"
	"fmt"
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

// Handle GET /api/v1/admin/bookings/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := handlers.ParseBookingFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/bookings/export - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	export, err := h.service.ExportCSV(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings/export - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings/export - Export failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/export - Exported %d rows to %s", export.Rows, export.Filename)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(export.Data)
}
