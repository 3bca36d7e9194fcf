package check_availability

import (
	"errors"
	"time"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
	"github.com/jalelchniti/smarthub-booking/pkg/types"
)

const maxSuggestions = 3

// occupiedSlotSet folds the occupied slots of all active bookings into
// one lookup set. Bookings whose créneau no longer maps onto the
// catalog are skipped.
func occupiedSlotSet(bookings []*domain.Booking) map[types.TimeString]struct{} {
	occupied := make(map[types.TimeString]struct{})
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		slots, err := b.OccupiedSlots()
		if err != nil {
			continue
		}
		for _, s := range slots {
			occupied[s] = struct{}{}
		}
	}
	return occupied
}

// conflictingSlots returns the candidate slots already taken, in
// catalog order.
func conflictingSlots(candidate []types.TimeString, occupied map[types.TimeString]struct{}) []types.TimeString {
	conflicts := make([]types.TimeString, 0)
	for _, s := range candidate {
		if _, ok := occupied[s]; ok {
			conflicts = append(conflicts, s)
		}
	}
	return conflicts
}

// suggestAlternatives scans the day's full catalog for start slots
// whose entire créneau is free and returns up to maxSuggestions of
// them, excluding the start the caller already tried.
func suggestAlternatives(
	date time.Time,
	durationHours float64,
	occupied map[types.TimeString]struct{},
	exclude types.TimeString,
) []types.TimeString {
	suggestions := make([]types.TimeString, 0, maxSuggestions)

	for _, start := range domain.SlotsForDate(date) {
		if start == exclude {
			continue
		}
		slots, err := domain.OccupiedSlots(start, durationHours, date)
		if err != nil {
			if errors.Is(err, domain.ErrNotEnoughSlots) {
				// Every later start overruns the catalog too.
				break
			}
			continue
		}
		if len(conflictingSlots(slots, occupied)) == 0 {
			suggestions = append(suggestions, start)
			if len(suggestions) == maxSuggestions {
				break
			}
		}
	}

	return suggestions
}

// chunkCreneaux groups a flat slot selection into créneaux of perCreneau
// consecutive entries. A trailing incomplete group is kept; its
// validation fails on slot count.
func chunkCreneaux(slots []types.TimeString, perCreneau int) [][]types.TimeString {
	if perCreneau <= 0 {
		return nil
	}
	chunks := make([][]types.TimeString, 0, (len(slots)+perCreneau-1)/perCreneau)
	for start := 0; start < len(slots); start += perCreneau {
		end := start + perCreneau
		if end > len(slots) {
			end = len(slots)
		}
		chunks = append(chunks, slots[start:end])
	}
	return chunks
}
