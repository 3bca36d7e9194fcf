package booking_summary

import (
	"context"

	"github.com/jalelchniti/smarthub-booking/internal/service/admin"
	"github.com/jalelchniti/smarthub-booking/internal/service/bookings/models"
)

type AdminService interface {
	Summarize(ctx context.Context, req *models.ListBookingsRequest) (*admin.Summary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
