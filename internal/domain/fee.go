package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDuration is returned when a créneau duration fails validation.
var ErrInvalidDuration = errors.New("domain: invalid créneau duration")

// FeeCalculation is the fee breakdown attached to a booking at creation
// time. Immutable thereafter.
type FeeCalculation struct {
	HourlyRate float64
	SubtotalHT float64 // rate × duration, excluding VAT
	VATAmount  float64
	TotalTTC   float64
	VATRate    float64
}

// DurationValidation is the interactive validation result surfaced to
// the booking form. The message is user-facing, hence French.
type DurationValidation struct {
	IsValid bool
	Message string
}

// ValidateCreneauDuration checks that a créneau duration is between
// 1h30 and 3h in steps of 30 minutes. Checks run in order and the first
// failing one provides the message.
func ValidateCreneauDuration(duration float64) DurationValidation {
	if duration < MinCreneauHours {
		return DurationValidation{
			Message: fmt.Sprintf("la durée minimale d'un créneau est de %.1f heures", MinCreneauHours),
		}
	}
	if duration > MaxCreneauHours {
		return DurationValidation{
			Message: fmt.Sprintf("la durée maximale d'un créneau est de %.1f heures", MaxCreneauHours),
		}
	}
	if rem := math.Mod(duration, CreneauStepHours); math.Abs(rem) > 1e-9 && math.Abs(rem-CreneauStepHours) > 1e-9 {
		return DurationValidation{
			Message: "la durée doit être un multiple de 30 minutes",
		}
	}
	return DurationValidation{IsValid: true}
}

// CalculateBookingFees computes the fee breakdown for one créneau.
// The duration is re-validated defensively; callers are expected to
// have run ValidateCreneauDuration already.
func CalculateBookingFees(roomID string, studentCount int, duration float64) (FeeCalculation, error) {
	if v := ValidateCreneauDuration(duration); !v.IsValid {
		return FeeCalculation{}, fmt.Errorf("%w: %s", ErrInvalidDuration, v.Message)
	}

	rate, err := HourlyRate(roomID, studentCount)
	if err != nil {
		return FeeCalculation{}, err
	}

	subtotal := rate * duration
	vat := subtotal * VATRate

	return FeeCalculation{
		HourlyRate: rate,
		SubtotalHT: subtotal,
		VATAmount:  vat,
		TotalTTC:   subtotal + vat,
		VATRate:    VATRate,
	}, nil
}

// SessionFees is the aggregate breakdown for a multi-créneau selection.
// All créneaux of one submission share room, duration and occupancy, so
// the per-créneau fee is computed once and multiplied.
type SessionFees struct {
	PerCreneau   FeeCalculation
	CreneauCount int
	SubtotalHT   float64
	VATAmount    float64
	TotalTTC     float64

	// ProtectionApplied is set when the income-protection cap reduced
	// the subtotal below the list price.
	ProtectionApplied bool
}

// CalculateSessionFees aggregates fees over creneauCount identical
// créneaux. When declaredRevenue > 0, the income-protection rule caps
// the session subtotal at IncomeProtectionShare of the declared
// revenue, floored at IncomeProtectionFloor of the list fee.
func CalculateSessionFees(roomID string, studentCount int, duration float64, creneauCount int, declaredRevenue float64) (SessionFees, error) {
	if creneauCount < 1 {
		return SessionFees{}, fmt.Errorf("%w: créneau count must be at least 1", ErrInvalidDuration)
	}

	per, err := CalculateBookingFees(roomID, studentCount, duration)
	if err != nil {
		return SessionFees{}, err
	}

	subtotal := per.SubtotalHT * float64(creneauCount)
	protected := false

	if declaredRevenue > 0 {
		capped := declaredRevenue * IncomeProtectionShare
		floor := subtotal * IncomeProtectionFloor
		if capped < subtotal {
			protected = true
			if capped < floor {
				capped = floor
			}
			subtotal = capped
		}
	}

	vat := subtotal * VATRate

	return SessionFees{
		PerCreneau:        per,
		CreneauCount:      creneauCount,
		SubtotalHT:        subtotal,
		VATAmount:         vat,
		TotalTTC:          subtotal + vat,
		ProtectionApplied: protected,
	}, nil
}
