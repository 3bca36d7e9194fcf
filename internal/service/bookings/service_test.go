package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
	bookingRepo "github.com/jalelchniti/smarthub-booking/internal/infra/storage/booking"
	"github.com/jalelchniti/smarthub-booking/internal/service/bookings/models"
)

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	GetByIDFunc        func(ctx context.Context, id int64) (*domain.Booking, error)
	GetWithFilterFunc  func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatusFunc   func(ctx context.Context, id int64, status domain.PaymentStatus) error
	ConfirmPaymentFunc func(ctx context.Context, id int64, method domain.PaymentMethod, transactionID *string) error
	DeleteFunc         func(ctx context.Context, id int64) error
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (m *MockBookingRepository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if m.GetWithFilterFunc != nil {
		return m.GetWithFilterFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockBookingRepository) ConfirmPayment(ctx context.Context, id int64, method domain.PaymentMethod, transactionID *string) error {
	if m.ConfirmPaymentFunc != nil {
		return m.ConfirmPaymentFunc(ctx, id, method, transactionID)
	}
	return nil
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockMetaRepository is a mock implementation of MetaRepository
type MockMetaRepository struct {
	touched int
}

func (m *MockMetaRepository) TouchLastUpdated(ctx context.Context) error {
	m.touched++
	return nil
}

// MockHub records published snapshots.
type MockHub struct {
	published [][]byte
}

func (m *MockHub) Publish(snapshot []byte) {
	m.published = append(m.published, snapshot)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func pendingBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		RoomID:        "1",
		Date:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartSlot:     "09:00",
		DurationHours: 2.0,
		TeacherName:   "M. Ben Salah",
		Subject:       "Physique",
		StudentCount:  4,
		ContactInfo:   "bensalah@example.com",
		Status:        domain.PaymentPending,
		Fee: domain.FeeCalculation{
			HourlyRate: 20,
			SubtotalHT: 40,
			VATAmount:  7.6,
			TotalTTC:   47.6,
			VATRate:    domain.VATRate,
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func newTestService(repo *MockBookingRepository) (*Service, *MockMetaRepository, *MockHub) {
	meta := &MockMetaRepository{}
	hub := &MockHub{}
	return NewService(repo, meta, hub, nopLogger{}), meta, hub
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _ := newTestService(&MockBookingRepository{})

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_PendingBooking(t *testing.T) {
	var updatedTo domain.PaymentStatus
	repo := &MockBookingRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return pendingBooking(id), nil
		},
		UpdateStatusFunc: func(ctx context.Context, id int64, status domain.PaymentStatus) error {
			updatedTo = status
			return nil
		},
	}
	svc, meta, hub := newTestService(repo)

	err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCancelled, updatedTo)
	assert.Equal(t, 1, meta.touched)
	assert.Len(t, hub.published, 1)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := &MockBookingRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			b := pendingBooking(id)
			b.Status = domain.PaymentCancelled
			return b, nil
		},
	}
	svc, meta, _ := newTestService(repo)

	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, 0, meta.touched)
}

func TestUpdatePaymentStatus_PaidToCancelledRejected(t *testing.T) {
	repo := &MockBookingRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			b := pendingBooking(id)
			b.Status = domain.PaymentPaid
			return b, nil
		},
	}
	svc, _, _ := newTestService(repo)

	err := svc.UpdatePaymentStatus(context.Background(), 1, "cancelled")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

// The admin status route can reset any booking to pending, including a
// paid one.
func TestUpdatePaymentStatus_ReopenPaidToPending(t *testing.T) {
	var updatedTo domain.PaymentStatus
	repo := &MockBookingRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			b := pendingBooking(id)
			b.Status = domain.PaymentPaid
			return b, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id int64, status domain.PaymentStatus) error {
			updatedTo = status
			return nil
		},
	}
	svc, meta, hub := newTestService(repo)

	err := svc.UpdatePaymentStatus(context.Background(), 1, "pending")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, updatedTo)
	assert.Equal(t, 1, meta.touched)
	assert.Len(t, hub.published, 1)
}

func TestUpdatePaymentStatus_UnknownStatus(t *testing.T) {
	svc, _, _ := newTestService(&MockBookingRepository{})

	err := svc.UpdatePaymentStatus(context.Background(), 1, "refunded")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConfirmPayment_OnlineGeneratesTransactionID(t *testing.T) {
	var gotTxID *string
	repo := &MockBookingRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return pendingBooking(id), nil
		},
		ConfirmPaymentFunc: func(ctx context.Context, id int64, method domain.PaymentMethod, transactionID *string) error {
			gotTxID = transactionID
			return nil
		},
	}
	svc, _, _ := newTestService(repo)

	err := svc.ConfirmPayment(context.Background(), 1, "online", nil)
	require.NoError(t, err)
	require.NotNil(t, gotTxID)
	assert.NotEmpty(t, *gotTxID)
}

func TestConfirmPayment_OfflineKeepsNilTransactionID(t *testing.T) {
	var gotTxID *string
	var gotSet bool
	repo := &MockBookingRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return pendingBooking(id), nil
		},
		ConfirmPaymentFunc: func(ctx context.Context, id int64, method domain.PaymentMethod, transactionID *string) error {
			gotTxID = transactionID
			gotSet = true
			return nil
		},
	}
	svc, _, _ := newTestService(repo)

	err := svc.ConfirmPayment(context.Background(), 1, "offline", nil)
	require.NoError(t, err)
	assert.True(t, gotSet)
	assert.Nil(t, gotTxID)
}

func TestConfirmPayment_InvalidMethod(t *testing.T) {
	svc, _, _ := newTestService(&MockBookingRepository{})

	err := svc.ConfirmPayment(context.Background(), 1, "cash", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConfirmPayment_AlreadyPaid(t *testing.T) {
	repo := &MockBookingRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			b := pendingBooking(id)
			b.Status = domain.PaymentPaid
			return b, nil
		},
	}
	svc, _, _ := newTestService(repo)

	err := svc.ConfirmPayment(context.Background(), 1, "online", nil)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestBulkDelete_PartialSuccess(t *testing.T) {
	repo := &MockBookingRepository{
		DeleteFunc: func(ctx context.Context, id int64) error {
			if id == 2 {
				return bookingRepo.ErrBookingNotFound
			}
			return nil
		},
	}
	svc, meta, hub := newTestService(repo)

	result, err := svc.BulkDelete(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Deleted)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, int64(2), result.Errors[0].ID)
	assert.Equal(t, "booking not found", result.Errors[0].Reason)

	// Applied deletes still notify.
	assert.Equal(t, 1, meta.touched)
	assert.Len(t, hub.published, 1)
}

func TestBulkDelete_AllFail(t *testing.T) {
	repo := &MockBookingRepository{
		DeleteFunc: func(ctx context.Context, id int64) error {
			return errors.New("db down")
		},
	}
	svc, meta, _ := newTestService(repo)

	result, err := svc.BulkDelete(context.Background(), []int64{1, 2})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Deleted)
	assert.Len(t, result.Errors, 2)
	assert.Equal(t, 0, meta.touched)
}

func TestBulkDelete_EmptyList(t *testing.T) {
	svc, _, _ := newTestService(&MockBookingRepository{})

	_, err := svc.BulkDelete(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSnapshotJSON_IsAValidBookingList(t *testing.T) {
	repo := &MockBookingRepository{
		GetWithFilterFunc: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			assert.False(t, filter.IncludeCancelled)
			return []*domain.Booking{pendingBooking(1), pendingBooking(2)}, nil
		},
	}
	svc, _, _ := newTestService(repo)

	data, err := svc.SnapshotJSON(context.Background())
	require.NoError(t, err)

	var list models.BookingListResponse
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Bookings, 2)
	assert.Equal(t, "09:00", list.Bookings[0].StartSlot)
	assert.InDelta(t, 47.6, list.Bookings[0].Fee.TotalTTC, 1e-9)
}

func TestList_FiltersInvalidStatus(t *testing.T) {
	svc, _, _ := newTestService(&MockBookingRepository{})

	bad := "refunded"
	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
