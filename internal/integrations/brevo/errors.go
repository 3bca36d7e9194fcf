package brevo

import "errors"

var (
	// ErrInternal is returned on client-side failures (request build,
	// network).
	ErrInternal = errors.New("brevo client: internal error")

	// ErrRejected is returned when the provider refuses the submission
	// with a client-error status.
	ErrRejected = errors.New("brevo client: submission rejected")
)
