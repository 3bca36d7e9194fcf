package domain

import (
	"errors"
	"time"

	"github.com/jalelchniti/smarthub-booking/pkg/types"
)

var (
	// ErrSlotNotInCatalog is returned when a start slot is not part of
	// the catalog for the requested day.
	ErrSlotNotInCatalog = errors.New("domain: start slot not in catalog")

	// ErrNotEnoughSlots is returned when a créneau would run past the
	// end of the day's catalog. Créneaux never wrap to the next day.
	ErrNotEnoughSlots = errors.New("domain: not enough consecutive slots")
)

// WeekdaySlots is the 30-minute slot catalog for Monday through
// Saturday (08:00–20:00).
var WeekdaySlots = buildSlots("08:00", 24)

// SundaySlots is the reduced Sunday catalog (09:00–13:00).
var SundaySlots = buildSlots("09:00", 8)

func buildSlots(start types.TimeString, count int) []types.TimeString {
	slots := make([]types.TimeString, 0, count)
	cur := start
	for i := 0; i < count; i++ {
		slots = append(slots, cur)
		next, err := cur.AddMinutes(SlotStepMinutes)
		if err != nil {
			break
		}
		cur = next
	}
	return slots
}

// SlotsForDate returns the slot catalog applicable to a calendar day.
func SlotsForDate(date time.Time) []types.TimeString {
	if date.Weekday() == time.Sunday {
		return SundaySlots
	}
	return WeekdaySlots
}

// SlotsPerCreneau converts a duration in hours into a slot count.
func SlotsPerCreneau(durationHours float64) int {
	return int(durationHours * 60 / SlotStepMinutes)
}

// OccupiedSlots expands a créneau into the consecutive slots it
// occupies on the given date. Fails when the start slot is not in the
// day's catalog or when fewer than duration×2 slots remain.
func OccupiedSlots(startSlot types.TimeString, durationHours float64, date time.Time) ([]types.TimeString, error) {
	catalog := SlotsForDate(date)

	start := -1
	for i, s := range catalog {
		if s == startSlot {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, ErrSlotNotInCatalog
	}

	need := SlotsPerCreneau(durationHours)
	if start+need > len(catalog) {
		return nil, ErrNotEnoughSlots
	}

	occupied := make([]types.TimeString, need)
	copy(occupied, catalog[start:start+need])
	return occupied, nil
}
