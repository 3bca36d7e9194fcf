package admin

import "errors"

var (
	// ErrInvalidInput is returned on malformed filter input.
	ErrInvalidInput = errors.New("admin: invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("admin: internal error")
)
