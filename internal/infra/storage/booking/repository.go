package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
	"github.com/jalelchniti/smarthub-booking/pkg/dbmetrics"
	"github.com/jalelchniti/smarthub-booking/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"room_id",
	"booking_date",
	"start_slot",
	"duration_hours",
	"teacher_name",
	"subject",
	"student_count",
	"contact_info",
	"payment_status",
	"payment_method",
	"payment_transaction_id",
	"payment_at",
	"hourly_rate",
	"subtotal_ht",
	"vat_amount",
	"total_ttc",
	"vat_rate",
	"created_at",
	"updated_at",
}

// Repository is the Postgres repository for bookings.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository over db.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and fills in its generated fields.
// When the context carries an active transaction it is used, which is
// how the create-booking flow serializes the conflict re-check with the
// insert.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"room_id",
			"booking_date",
			"start_slot",
			"duration_hours",
			"teacher_name",
			"subject",
			"student_count",
			"contact_info",
			"payment_status",
			"payment_method",
			"payment_transaction_id",
			"hourly_rate",
			"subtotal_ht",
			"vat_amount",
			"total_ttc",
			"vat_rate",
		).
		Values(
			b.RoomID,
			b.Date,
			b.StartSlot,
			b.DurationHours,
			b.TeacherName,
			b.Subject,
			b.StudentCount,
			b.ContactInfo,
			b.Status,
			b.PaymentMethod,
			b.PaymentTransactionID,
			b.Fee.HourlyRate,
			b.Fee.SubtotalHT,
			b.Fee.VATAmount,
			b.Fee.TotalTTC,
			b.Fee.VATRate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID fetches a booking by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}
	return bookings[0], nil
}

// GetWithFilter lists bookings matching the filter.
//
// Cancelled rows are excluded unless the filter asks for them or
// targets the cancelled status explicitly. Inside a transaction, a
// single-date query adds FOR UPDATE so the conflict re-check of the
// create flow locks the day's rows.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"payment_status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"payment_status": string(domain.PaymentCancelled)})
	}

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"teacher_name": pattern},
			squirrel.ILike{"subject": pattern},
			squirrel.ILike{"contact_info": pattern},
		})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_slot ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_slot DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus patches the payment status. Transitioning to paid also
// stamps payment_at.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status == domain.PaymentPaid {
		updateBuilder = updateBuilder.Set("payment_at", squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateStatus")
}

// ConfirmPayment marks a booking paid with its payment method and
// optional provider transaction id.
func (r *Repository) ConfirmPayment(ctx context.Context, id int64, method domain.PaymentMethod, transactionID *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", domain.PaymentPaid).
		Set("payment_method", method).
		Set("payment_transaction_id", transactionID).
		Set("payment_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ConfirmPayment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ConfirmPayment - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "ConfirmPayment")
}

// Delete removes a booking physically. Reserved for admin cleanup; the
// booking flows cancel via UpdateStatus instead.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt, paymentAt sql.NullTime
		var method, transactionID sql.NullString

		err := rows.Scan(
			&b.ID,
			&b.RoomID,
			&b.Date,
			&b.StartSlot,
			&b.DurationHours,
			&b.TeacherName,
			&b.Subject,
			&b.StudentCount,
			&b.ContactInfo,
			&b.Status,
			&method,
			&transactionID,
			&paymentAt,
			&b.Fee.HourlyRate,
			&b.Fee.SubtotalHT,
			&b.Fee.VATAmount,
			&b.Fee.TotalTTC,
			&b.Fee.VATRate,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		if method.Valid {
			m := domain.PaymentMethod(method.String)
			b.PaymentMethod = &m
		}
		if transactionID.Valid {
			b.PaymentTransactionID = &transactionID.String
		}
		if paymentAt.Valid {
			b.PaymentAt = &paymentAt.Time
		}
		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
