package auth

import (
	"context"

	"github.com/jalelchniti/smarthub-booking/internal/infra/storage/adminuser"
)

// AdminUserRepository is the repository surface this service needs.
type AdminUserRepository interface {
	GetByUsername(ctx context.Context, username string) (*adminuser.AdminUser, error)
}

// Logger is the logging surface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
