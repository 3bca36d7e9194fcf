package check_availability

import "errors"

var (
	// ErrRoomNotFound is returned when the room id is unknown.
	ErrRoomNotFound = errors.New("check_availability: room not found")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("check_availability: internal error")
)
