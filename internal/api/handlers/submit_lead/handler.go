package submit_lead

import (
	"errors"
	"net/http"

	"github.com/jalelchniti/smarthub-booking/internal/api/handlers"
	"github.com/jalelchniti/smarthub-booking/internal/integrations/brevo"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidLead        = "coordonnées invalides"
	msgLeadRejected       = "inscription refusée par le fournisseur"
	msgAccepted           = "inscription enregistrée"
)

type Handler struct {
	relay  LeadRelay
	logger Logger
}

func NewHandler(relay LeadRelay, logger Logger) *Handler {
	return &Handler{
		relay:  relay,
		logger: logger,
	}
}

// SubmitLeadResponse HTTP response model.
type SubmitLeadResponse struct {
	Message string `json:"message"`
}

// Handle POST /api/v1/leads
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitLeadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /leads - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("POST /leads - Invalid lead: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLead)
		return
	}

	if err := h.relay.SubmitLead(r.Context(), req.ToLead()); err != nil {
		switch {
		case errors.Is(err, brevo.ErrRejected):
			h.logger.Warn("POST /leads - Provider rejected lead: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgLeadRejected)

		default:
			h.logger.Error("POST /leads - Relay failed: email=%s error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /leads - Lead relayed: email=%s locale=%s", req.Email, req.Locale)
	handlers.RespondJSON(w, http.StatusAccepted, &SubmitLeadResponse{Message: msgAccepted})
}
