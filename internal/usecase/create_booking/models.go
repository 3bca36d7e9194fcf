package create_booking

import (
	"time"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
	"github.com/jalelchniti/smarthub-booking/pkg/types"
)

// Request carries a validated booking submission.
type Request struct {
	RoomID        string
	Date          time.Time        // calendar day
	StartSlot     types.TimeString // first slot of the créneau
	DurationHours float64
	TeacherName   string
	Subject       string
	StudentCount  int
	ContactInfo   string
	// Status defaults to pending when empty. Admin imports may set it
	// explicitly.
	Status domain.PaymentStatus
}

// Response is the created booking with its server-computed fields.
type Response struct {
	ID            int64
	RoomID        string
	Date          time.Time
	StartSlot     types.TimeString
	DurationHours float64
	TeacherName   string
	Subject       string
	StudentCount  int
	ContactInfo   string
	Status        domain.PaymentStatus

	// Fee breakdown computed at creation time.
	Fee domain.FeeCalculation

	CreatedAt time.Time
	UpdatedAt time.Time
}
