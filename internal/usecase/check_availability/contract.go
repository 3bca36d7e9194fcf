package check_availability

import (
	"context"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
)

// BookingRepository is the repository surface this use case needs.
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger is the logging surface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
