package check_availability

import (
	"context"

	checkAvailability "github.com/jalelchniti/smarthub-booking/internal/usecase/check_availability"
)

type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
	ExecuteBatch(ctx context.Context, req *checkAvailability.BatchRequest) (*checkAvailability.BatchResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
