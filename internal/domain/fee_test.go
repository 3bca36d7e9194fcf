package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyRate_TierBoundaries(t *testing.T) {
	tests := []struct {
		name         string
		roomID       string
		studentCount int
		wantRate     float64
	}{
		{"salle 1 lowest tier", "1", 1, 15},
		{"salle 1 lowest tier upper bound", "1", 2, 15},
		{"salle 1 middle tier", "1", 3, 20},
		{"salle 1 top tier lower bound", "1", 5, 25},
		{"salle 1 full", "1", 9, 25},
		{"salle 2 one student", "2", 1, 15},
		{"salle 2 five students", "2", 5, 20},
		{"salle 2 nine students", "2", 9, 25},
		{"salle 3 small group", "3", 9, 25},
		{"salle 3 large group", "3", 10, 30},
		{"salle 3 full", "3", 20, 30},
		{"above last tier falls back to last rate", "1", 50, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := HourlyRate(tt.roomID, tt.studentCount)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRate, rate)
		})
	}
}

func TestHourlyRate_UnknownRoom(t *testing.T) {
	_, err := HourlyRate("99", 5)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestValidateCreneauDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		valid    bool
	}{
		{"minimum", 1.5, true},
		{"two hours", 2.0, true},
		{"two and a half", 2.5, true},
		{"maximum", 3.0, true},
		{"below minimum", 1.0, false},
		{"above maximum", 3.5, false},
		{"not a half-hour multiple", 1.75, false},
		{"zero", 0, false},
		{"negative", -2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateCreneauDuration(tt.duration)
			assert.Equal(t, tt.valid, v.IsValid)
			if !tt.valid {
				assert.NotEmpty(t, v.Message)
			}
		})
	}
}

func TestCalculateBookingFees(t *testing.T) {
	// Salle 2, 5 students → 20/h. 2h → 40 HT, 7.60 VAT, 47.60 TTC.
	fee, err := CalculateBookingFees("2", 5, 2.0)
	require.NoError(t, err)

	assert.Equal(t, 20.0, fee.HourlyRate)
	assert.InDelta(t, 40.0, fee.SubtotalHT, 1e-9)
	assert.InDelta(t, 7.60, fee.VATAmount, 1e-9)
	assert.InDelta(t, 47.60, fee.TotalTTC, 1e-9)
	assert.Equal(t, VATRate, fee.VATRate)
}

func TestCalculateBookingFees_TotalIsSubtotalPlusVAT(t *testing.T) {
	for _, duration := range []float64{1.5, 2.0, 2.5, 3.0} {
		for _, students := range []int{1, 4, 9} {
			fee, err := CalculateBookingFees("1", students, duration)
			require.NoError(t, err)
			assert.InDelta(t, fee.SubtotalHT+fee.VATAmount, fee.TotalTTC, 1e-9)
			assert.InDelta(t, fee.SubtotalHT*VATRate, fee.VATAmount, 1e-9)
		}
	}
}

func TestCalculateBookingFees_InvalidDuration(t *testing.T) {
	_, err := CalculateBookingFees("1", 3, 1.0)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestCalculateBookingFees_UnknownRoom(t *testing.T) {
	_, err := CalculateBookingFees("nope", 3, 2.0)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCalculateSessionFees_NoProtection(t *testing.T) {
	// Salle 1, 2 students → 15/h. 2h × 4 créneaux → 120 HT.
	fees, err := CalculateSessionFees("1", 2, 2.0, 4, 0)
	require.NoError(t, err)

	assert.Equal(t, 4, fees.CreneauCount)
	assert.False(t, fees.ProtectionApplied)
	assert.InDelta(t, 120.0, fees.SubtotalHT, 1e-9)
	assert.InDelta(t, 120.0*VATRate, fees.VATAmount, 1e-9)
	assert.InDelta(t, fees.SubtotalHT+fees.VATAmount, fees.TotalTTC, 1e-9)
}

func TestCalculateSessionFees_ProtectionCapsAtRevenueShare(t *testing.T) {
	// List fee 120 HT; declared revenue 200 → cap 80, floor 60.
	fees, err := CalculateSessionFees("1", 2, 2.0, 4, 200)
	require.NoError(t, err)

	assert.True(t, fees.ProtectionApplied)
	assert.InDelta(t, 80.0, fees.SubtotalHT, 1e-9)
}

func TestCalculateSessionFees_ProtectionFloor(t *testing.T) {
	// List fee 120 HT; declared revenue 50 → cap 20, floored at 60.
	fees, err := CalculateSessionFees("1", 2, 2.0, 4, 50)
	require.NoError(t, err)

	assert.True(t, fees.ProtectionApplied)
	assert.InDelta(t, 60.0, fees.SubtotalHT, 1e-9)
}

func TestCalculateSessionFees_HighRevenueLeavesListPrice(t *testing.T) {
	fees, err := CalculateSessionFees("1", 2, 2.0, 4, 10000)
	require.NoError(t, err)

	assert.False(t, fees.ProtectionApplied)
	assert.InDelta(t, 120.0, fees.SubtotalHT, 1e-9)
}

func TestCalculateSessionFees_InvalidCount(t *testing.T) {
	_, err := CalculateSessionFees("1", 2, 2.0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestRoomCatalog_TiersPartitionCapacity(t *testing.T) {
	for _, room := range Rooms {
		next := 1
		for _, tier := range room.Tiers {
			assert.Equal(t, next, tier.MinStudents,
				"room %s: tier must start where the previous ended", room.ID)
			assert.GreaterOrEqual(t, tier.MaxStudents, tier.MinStudents)
			next = tier.MaxStudents + 1
		}
		assert.Equal(t, room.Capacity+1, next, "room %s: tiers must cover capacity", room.ID)
	}
}

func TestRoomCatalog_RatesAreMonotonic(t *testing.T) {
	for _, room := range Rooms {
		prev := math.Inf(-1)
		for _, tier := range room.Tiers {
			assert.Greater(t, tier.HourlyRate, prev, "room %s", room.ID)
			prev = tier.HourlyRate
		}
	}
}
