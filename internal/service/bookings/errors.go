package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the id.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrIllegalTransition is returned when a payment-status change is
	// not allowed (e.g. cancelled → paid).
	ErrIllegalTransition = errors.New("illegal payment status transition")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
