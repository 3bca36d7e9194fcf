package create_booking

import "errors"

var (
	// ErrRoomNotFound is returned when the room id is unknown.
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrInvalidDuration is returned when the créneau duration fails
	// validation.
	ErrInvalidDuration = errors.New("create_booking: invalid créneau duration")

	// ErrInvalidDate is returned for a zero or past booking date.
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSlotConflict is returned when the créneau overlaps an active
	// booking.
	ErrSlotConflict = errors.New("create_booking: créneau conflicts with an existing booking")

	// ErrNotEnoughSlots is returned when the créneau overruns the
	// day's slot catalog.
	ErrNotEnoughSlots = errors.New("create_booking: not enough consecutive slots")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("create_booking: internal error")
)
