package meta

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jalelchniti/smarthub-booking/pkg/dbmetrics"
)

var (
	// ErrExecQuery is returned when a SQL statement fails to execute.
	ErrExecQuery = errors.New("meta.repository: failed to execute query")
)

// Repository maintains the global last_updated marker that every
// booking mutation touches. Dashboard clients use it to detect missed
// updates after a reconnect.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a meta repository over db.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// TouchLastUpdated bumps the marker to the current time.
func (r *Repository) TouchLastUpdated(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Single-row table keyed by a constant id.
	query := `INSERT INTO booking_meta (id, last_updated) VALUES (1, NOW())
	          ON CONFLICT (id) DO UPDATE SET last_updated = NOW()`

	if _, err := executor.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: TouchLastUpdated: %v", ErrExecQuery, err)
	}
	return nil
}

// GetLastUpdated reads the marker. A missing row reports the zero time.
func (r *Repository) GetLastUpdated(ctx context.Context) (time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var ts time.Time
	err := executor.QueryRowContext(ctx, `SELECT last_updated FROM booking_meta WHERE id = 1`).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: GetLastUpdated: %v", ErrExecQuery, err)
	}
	return ts, nil
}
