package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalelchniti/smarthub-booking/pkg/types"
)

func TestWeekdaySlots(t *testing.T) {
	require.Len(t, WeekdaySlots, 24)
	assert.Equal(t, types.TimeString("08:00"), WeekdaySlots[0])
	assert.Equal(t, types.TimeString("19:30"), WeekdaySlots[23])
}

func TestSundaySlots(t *testing.T) {
	require.Len(t, SundaySlots, 8)
	assert.Equal(t, types.TimeString("09:00"), SundaySlots[0])
	assert.Equal(t, types.TimeString("12:30"), SundaySlots[7])
}

func TestSlotsForDate(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, WeekdaySlots, SlotsForDate(monday))
	assert.Equal(t, SundaySlots, SlotsForDate(sunday))
}

func TestSlotsPerCreneau(t *testing.T) {
	assert.Equal(t, 3, SlotsPerCreneau(1.5))
	assert.Equal(t, 4, SlotsPerCreneau(2.0))
	assert.Equal(t, 5, SlotsPerCreneau(2.5))
	assert.Equal(t, 6, SlotsPerCreneau(3.0))
}

func TestOccupiedSlots(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	slots, err := OccupiedSlots("09:00", 2.0, monday)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestOccupiedSlots_EndOfDay(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	// 18:30 + 1.5h ends exactly at closing.
	slots, err := OccupiedSlots("18:30", 1.5, monday)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"18:30", "19:00", "19:30"}, slots)
}

func TestOccupiedSlots_Overrun(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	// 19:00 + 2h would run past 20:00. Never wraps to the next day.
	_, err := OccupiedSlots("19:00", 2.0, monday)
	assert.ErrorIs(t, err, ErrNotEnoughSlots)
}

func TestOccupiedSlots_SundayOverrun(t *testing.T) {
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	// 12:00 + 1.5h runs past the 13:00 Sunday closing.
	_, err := OccupiedSlots("12:00", 1.5, sunday)
	assert.ErrorIs(t, err, ErrNotEnoughSlots)
}

func TestOccupiedSlots_UnknownStart(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	_, err := OccupiedSlots("07:00", 1.5, monday)
	assert.ErrorIs(t, err, ErrSlotNotInCatalog)

	// 08:00 exists on weekdays but not on Sundays.
	_, err = OccupiedSlots("08:00", 1.5, sunday)
	assert.ErrorIs(t, err, ErrSlotNotInCatalog)

	// Off-grid start.
	_, err = OccupiedSlots("09:15", 1.5, monday)
	assert.ErrorIs(t, err, ErrSlotNotInCatalog)
}
