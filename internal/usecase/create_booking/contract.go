package create_booking

import (
	"context"
	"time"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
)

// BookingRepository is the repository surface this use case needs.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// MetaRepository touches the global last_updated marker.
type MetaRepository interface {
	TouchLastUpdated(ctx context.Context) error
}

// TransactionManager runs the conflict re-check and the insert in one
// serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier pushes a fresh booking snapshot to subscribed clients.
type Notifier interface {
	PublishSnapshot(ctx context.Context)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
