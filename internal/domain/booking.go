package domain

import (
	"time"

	"github.com/jalelchniti/smarthub-booking/pkg/types"
)

// PaymentStatus represents the payment state of a booking.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

// PaymentMethod describes how a booking was paid.
type PaymentMethod string

const (
	PaymentOnline  PaymentMethod = "online"
	PaymentOffline PaymentMethod = "offline"
)

// ValidPaymentStatus reports whether s is a known status value.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a status change is legal.
// pending → paid and pending → cancelled are the user-facing
// transitions. Any status can be reopened to pending; the admin status
// route relies on this to reset a paid or cancelled booking.
func CanTransition(from, to PaymentStatus) bool {
	if from == to {
		return false
	}
	switch to {
	case PaymentPaid:
		return from == PaymentPending
	case PaymentCancelled:
		return from == PaymentPending
	case PaymentPending:
		return true
	}
	return false
}

// Booking represents a room reservation for one créneau.
type Booking struct {
	ID            int64
	RoomID        string
	Date          time.Time        // calendar day, time part zeroed
	StartSlot     types.TimeString // first occupied slot, e.g. "09:00"
	DurationHours float64          // 1.5, 2.0, 2.5 or 3.0
	TeacherName   string
	Subject       string
	StudentCount  int
	ContactInfo   string

	Status               PaymentStatus
	PaymentMethod        *PaymentMethod
	PaymentTransactionID *string
	PaymentAt            *time.Time

	// Fee holds the breakdown computed at creation time. It is never
	// recomputed, even if the pricing tiers change afterwards.
	Fee FeeCalculation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking still occupies its slots.
func (b *Booking) IsActive() bool {
	return b.Status != PaymentCancelled
}

// IsPaid reports whether the booking has been paid.
func (b *Booking) IsPaid() bool {
	return b.Status == PaymentPaid
}

// OccupiedSlots expands the booking into the atomic 30-minute slots it
// occupies on its date.
func (b *Booking) OccupiedSlots() ([]types.TimeString, error) {
	return OccupiedSlots(b.StartSlot, b.DurationHours, b.Date)
}

// BookingsFilter describes the admin/list query surface.
type BookingsFilter struct {
	RoomID           *string
	Date             *time.Time     // exact calendar day
	Status           *PaymentStatus // exact status match
	Search           *string        // matches teacher name, subject or contact
	IncludeCancelled bool           // cancelled rows are hidden by default
}
