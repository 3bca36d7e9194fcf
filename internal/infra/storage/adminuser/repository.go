package adminuser

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/jalelchniti/smarthub-booking/pkg/dbmetrics"
	"github.com/jalelchniti/smarthub-booking/pkg/psqlbuilder"
)

// AdminUser is an admin dashboard account.
type AdminUser struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Repository is the Postgres repository for admin accounts.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an admin-user repository over db.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUsername fetches an admin account by username.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*AdminUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "username", "password_hash", "created_at").
		From("admin_users").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - build select query: %v", ErrBuildQuery, err)
	}

	var user AdminUser
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - scan user: %v", ErrExecQuery, err)
	}

	return &user, nil
}
