package check_availability

import (
	"time"

	"github.com/jalelchniti/smarthub-booking/pkg/types"
)

// Request asks whether one créneau is free.
type Request struct {
	RoomID        string
	Date          time.Time        // calendar day
	StartSlot     types.TimeString // e.g. "09:00"
	DurationHours float64          // 1.5 .. 3.0
}

// Response is the availability verdict for one créneau.
type Response struct {
	IsAvailable bool
	// Message explains a negative verdict (conflicting slot labels or
	// catalog overrun). User-facing, hence French.
	Message string
	// SuggestedSlots lists up to three alternative start times whose
	// full créneau is conflict-free. Only filled on conflict.
	SuggestedSlots []types.TimeString
}

// BatchRequest validates a multi-créneau selection in one call. Slots
// is the flat list of selected 30-minute slots, grouped into créneaux
// of DurationHours×2 consecutive entries.
type BatchRequest struct {
	RoomID        string
	Date          time.Time
	Slots         []types.TimeString
	DurationHours float64
}

// CreneauResult is the verdict for one créneau of a batch.
type CreneauResult struct {
	StartSlot   types.TimeString
	IsAvailable bool
	Message     string
}

// BatchResponse reports per-créneau verdicts without a global
// rollback: partial success is a valid outcome and distinct from full
// failure.
type BatchResponse struct {
	Total       int
	Available   int
	Conflicting int
	Results     []CreneauResult
}
