package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for a wrong username or
	// password. Deliberately indistinguishable between the two.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken is returned for a missing, malformed or expired
	// token.
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("auth: internal error")
)
