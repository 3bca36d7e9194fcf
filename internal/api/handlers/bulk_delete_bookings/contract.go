package bulk_delete_bookings

import (
	"context"

	"github.com/jalelchniti/smarthub-booking/internal/service/bookings/models"
)

type BookingService interface {
	BulkDelete(ctx context.Context, ids []int64) (*models.BulkDeleteResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
