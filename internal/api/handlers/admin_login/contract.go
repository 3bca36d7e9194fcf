package admin_login

import (
	"context"

	"github.com/jalelchniti/smarthub-booking/internal/service/auth"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*auth.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
