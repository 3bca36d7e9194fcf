package bookings

import (
	"context"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
)

// BookingRepository is the repository surface this service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	ConfirmPayment(ctx context.Context, id int64, method domain.PaymentMethod, transactionID *string) error
	Delete(ctx context.Context, id int64) error
}

// MetaRepository touches the global last_updated marker.
type MetaRepository interface {
	TouchLastUpdated(ctx context.Context) error
}

// Hub is the snapshot broadcast surface.
type Hub interface {
	Publish(snapshot []byte)
}

// Logger is the logging surface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
