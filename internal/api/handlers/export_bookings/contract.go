package export_bookings

import (
	"context"

	"github.com/jalelchniti/smarthub-booking/internal/service/admin"
	"github.com/jalelchniti/smarthub-booking/internal/service/bookings/models"
)

type AdminService interface {
	ExportCSV(ctx context.Context, req *models.ListBookingsRequest) (*admin.Export, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
