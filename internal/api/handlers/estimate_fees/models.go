package estimate_fees

import "github.com/jalelchniti/smarthub-booking/internal/domain"

// EstimateFeesRequest HTTP request model. DeclaredRevenue is the
// teacher's declared course revenue; when positive it triggers the
// income-protection cap on the session subtotal.
type EstimateFeesRequest struct {
	RoomID          string  `json:"roomId"`
	StudentCount    int     `json:"studentCount"`
	Duration        float64 `json:"duration"`     // hours per créneau
	CreneauCount    int     `json:"creneauCount"` // sessions in the engagement
	DeclaredRevenue float64 `json:"declaredRevenue,omitempty"`
}

// FeeResponse HTTP fee breakdown model for one créneau.
type FeeResponse struct {
	HourlyRate float64 `json:"hourlyRate"`
	SubtotalHT float64 `json:"subtotalHT"`
	VATAmount  float64 `json:"vatAmount"`
	TotalTTC   float64 `json:"totalTTC"`
	VATRate    float64 `json:"vatRate"`
}

// EstimateFeesResponse HTTP response model for a full session.
type EstimateFeesResponse struct {
	PerCreneau        FeeResponse `json:"perCreneau"`
	CreneauCount      int         `json:"creneauCount"`
	SubtotalHT        float64     `json:"subtotalHT"`
	VATAmount         float64     `json:"vatAmount"`
	TotalTTC          float64     `json:"totalTTC"`
	ProtectionApplied bool        `json:"protectionApplied"`
}

// FromDomainSessionFees converts the domain result.
func FromDomainSessionFees(fees domain.SessionFees) *EstimateFeesResponse {
	return &EstimateFeesResponse{
		PerCreneau: FeeResponse{
			HourlyRate: fees.PerCreneau.HourlyRate,
			SubtotalHT: fees.PerCreneau.SubtotalHT,
			VATAmount:  fees.PerCreneau.VATAmount,
			TotalTTC:   fees.PerCreneau.TotalTTC,
			VATRate:    fees.PerCreneau.VATRate,
		},
		CreneauCount:      fees.CreneauCount,
		SubtotalHT:        fees.SubtotalHT,
		VATAmount:         fees.VATAmount,
		TotalTTC:          fees.TotalTTC,
		ProtectionApplied: fees.ProtectionApplied,
	}
}
