package check_availability

import (
	checkAvailability "github.com/jalelchniti/smarthub-booking/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model for a single créneau.
type AvailabilityResponse struct {
	IsAvailable    bool     `json:"isAvailable"`
	Message        string   `json:"message,omitempty"`
	SuggestedSlots []string `json:"suggestedSlots,omitempty"`
}

// BatchCheckRequest HTTP request model for a multi-créneau check.
type BatchCheckRequest struct {
	Date     string   `json:"date"`     // "2026-09-15"
	Slots    []string `json:"slots"`    // selected 30-minute slots
	Duration float64  `json:"duration"` // hours per créneau
}

// CreneauResultResponse is the verdict for one créneau of a batch.
type CreneauResultResponse struct {
	StartSlot   string `json:"startSlot"`
	IsAvailable bool   `json:"isAvailable"`
	Message     string `json:"message,omitempty"`
}

// BatchCheckResponse HTTP response model for a batch check.
type BatchCheckResponse struct {
	Total       int                     `json:"total"`
	Available   int                     `json:"available"`
	Conflicting int                     `json:"conflicting"`
	Results     []CreneauResultResponse `json:"results"`
}

// FromUseCaseResponse converts the single-créneau verdict.
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	suggested := make([]string, len(resp.SuggestedSlots))
	for i, s := range resp.SuggestedSlots {
		suggested[i] = s.String()
	}

	return &AvailabilityResponse{
		IsAvailable:    resp.IsAvailable,
		Message:        resp.Message,
		SuggestedSlots: suggested,
	}
}

// FromUseCaseBatchResponse converts the batch verdict.
func FromUseCaseBatchResponse(resp *checkAvailability.BatchResponse) *BatchCheckResponse {
	results := make([]CreneauResultResponse, len(resp.Results))
	for i, r := range resp.Results {
		results[i] = CreneauResultResponse{
			StartSlot:   r.StartSlot.String(),
			IsAvailable: r.IsAvailable,
			Message:     r.Message,
		}
	}

	return &BatchCheckResponse{
		Total:       resp.Total,
		Available:   resp.Available,
		Conflicting: resp.Conflicting,
		Results:     results,
	}
}
