package booking

import (
	"github.com/jalelchniti/smarthub-booking/pkg/dbmetrics"
)

// Re-export the dbmetrics executor interfaces used by this repository.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
