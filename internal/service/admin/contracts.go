package admin

import (
	"context"
	"time"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
)

// BookingRepository is the repository surface this service needs.
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// MetaRepository reads the global last_updated marker.
type MetaRepository interface {
	GetLastUpdated(ctx context.Context) (time.Time, error)
}

// Logger is the logging surface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
