package check_availability

import (
	"fmt"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
)

// validateRequest validates the single-créneau request.
func validateRequest(req *Request) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if _, err := domain.RoomByID(req.RoomID); err != nil {
		return ErrRoomNotFound
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartSlot.IsZero() {
		return fmt.Errorf("%w: startSlot is required", ErrInvalidInput)
	}

	if err := req.StartSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startSlot format: %v", ErrInvalidInput, err)
	}

	if v := domain.ValidateCreneauDuration(req.DurationHours); !v.IsValid {
		return fmt.Errorf("%w: %s", ErrInvalidInput, v.Message)
	}

	return nil
}

// validateBatchRequest validates the multi-créneau request.
func validateBatchRequest(req *BatchRequest) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if _, err := domain.RoomByID(req.RoomID); err != nil {
		return ErrRoomNotFound
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Slots) == 0 {
		return fmt.Errorf("%w: slot selection is empty", ErrInvalidInput)
	}

	for _, s := range req.Slots {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: invalid slot format: %v", ErrInvalidInput, err)
		}
	}

	if v := domain.ValidateCreneauDuration(req.DurationHours); !v.IsValid {
		return fmt.Errorf("%w: %s", ErrInvalidInput, v.Message)
	}

	return nil
}
