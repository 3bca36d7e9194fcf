package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
)

// validateRequest validates the booking submission.
func validateRequest(req *Request, now time.Time) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if _, err := domain.RoomByID(req.RoomID); err != nil {
		return ErrRoomNotFound
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if isDateInPast(req.Date, now) {
		return ErrInvalidDate
	}

	if req.StartSlot.IsZero() {
		return fmt.Errorf("%w: startSlot is required", ErrInvalidInput)
	}

	if err := req.StartSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startSlot format: %v", ErrInvalidInput, err)
	}

	if v := domain.ValidateCreneauDuration(req.DurationHours); !v.IsValid {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, v.Message)
	}

	if strings.TrimSpace(req.TeacherName) == "" {
		return fmt.Errorf("%w: teacherName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ContactInfo) == "" {
		return fmt.Errorf("%w: contactInfo is required", ErrInvalidInput)
	}

	if req.StudentCount < 1 {
		return fmt.Errorf("%w: studentCount must be at least 1", ErrInvalidInput)
	}

	if req.Status != "" && !domain.ValidPaymentStatus(req.Status) {
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, req.Status)
	}

	return nil
}

// isDateInPast compares calendar days, ignoring the time parts.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
