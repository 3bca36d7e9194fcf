package domain

// Fee calculation constants
const (
	// VATRate is the VAT rate applied to every booking.
	VATRate = 0.19

	// MinCreneauHours and MaxCreneauHours bound the duration of a
	// bookable time block (créneau).
	MinCreneauHours  = 1.5
	MaxCreneauHours  = 3.0
	CreneauStepHours = 0.5

	// SlotStepMinutes is the granularity of the slot catalog.
	SlotStepMinutes = 30
)

// Income protection constants. When a teacher declares the expected
// revenue of a session, the room fee is capped at a share of it so that
// a sparsely attended session does not cost more than it brings in.
const (
	IncomeProtectionShare = 0.40 // room fee may not exceed 40% of declared revenue
	IncomeProtectionFloor = 0.50 // but never drops below 50% of the list fee
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActivePaymentStatuses lists the statuses whose bookings occupy slots.
// Cancelled bookings free their slots but keep their row until an admin
// hard-deletes it.
var ActivePaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentPaid,
}
