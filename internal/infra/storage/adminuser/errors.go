package adminuser

import "errors"

var (
	// ErrUserNotFound is returned when no admin matches the username.
	ErrUserNotFound = errors.New("adminuser.repository: user not found")

	// ErrBuildQuery is returned when a SQL statement cannot be built.
	ErrBuildQuery = errors.New("adminuser.repository: failed to build query")

	// ErrExecQuery is returned when a SQL statement fails to execute.
	ErrExecQuery = errors.New("adminuser.repository: failed to execute query")
)
