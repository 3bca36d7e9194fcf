package submit_lead

import (
	"context"

	"github.com/jalelchniti/smarthub-booking/internal/integrations/brevo"
)

type LeadRelay interface {
	SubmitLead(ctx context.Context, lead brevo.Lead) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
