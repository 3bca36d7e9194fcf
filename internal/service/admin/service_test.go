package admin

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
	"github.com/jalelchniti/smarthub-booking/internal/service/bookings/models"
)

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	GetWithFilterFunc func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

func (m *MockBookingRepository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if m.GetWithFilterFunc != nil {
		return m.GetWithFilterFunc(ctx, filter)
	}
	return nil, nil
}

// MockMetaRepository is a mock implementation of MetaRepository
type MockMetaRepository struct {
	lastUpdated time.Time
}

func (m *MockMetaRepository) GetLastUpdated(ctx context.Context) (time.Time, error) {
	return m.lastUpdated, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func paidBooking(id int64, method domain.PaymentMethod, total float64) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		RoomID:        "1",
		Date:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartSlot:     "09:00",
		DurationHours: 2.0,
		TeacherName:   "Mme Gharbi",
		Subject:       "Anglais",
		StudentCount:  3,
		ContactInfo:   "gharbi@example.com",
		Status:        domain.PaymentPaid,
		PaymentMethod: &method,
		Fee: domain.FeeCalculation{
			HourlyRate: total / 1.19 / 2.0,
			SubtotalHT: total / 1.19,
			VATAmount:  total - total/1.19,
			TotalTTC:   total,
			VATRate:    domain.VATRate,
		},
	}
}

func pendingBooking(id int64, total float64) *domain.Booking {
	b := paidBooking(id, domain.PaymentOffline, total)
	b.Status = domain.PaymentPending
	b.PaymentMethod = nil
	return b
}

func TestSummarize(t *testing.T) {
	repo := &MockBookingRepository{
		GetWithFilterFunc: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			return []*domain.Booking{
				paidBooking(1, domain.PaymentOnline, 100),
				paidBooking(2, domain.PaymentOffline, 50),
				pendingBooking(3, 30),
			}, nil
		},
	}
	meta := &MockMetaRepository{lastUpdated: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}
	svc := NewService(repo, meta, nopLogger{})

	summary, err := svc.Summarize(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalBookings)
	assert.Equal(t, 2, summary.PaidCount)
	assert.Equal(t, 1, summary.PendingCount)
	assert.InDelta(t, 150, summary.PaidTTC, 1e-9)
	assert.InDelta(t, 30, summary.PendingTTC, 1e-9)
	assert.InDelta(t, 100, summary.OnlineTTC, 1e-9)
	assert.InDelta(t, 50, summary.OfflineTTC, 1e-9)
	require.NotNil(t, summary.LastUpdated)
	assert.Equal(t, "2026-08-30T12:00:00Z", *summary.LastUpdated)
}

func TestSummarize_Empty(t *testing.T) {
	svc := NewService(&MockBookingRepository{}, &MockMetaRepository{}, nopLogger{})

	summary, err := svc.Summarize(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalBookings)
	assert.Zero(t, summary.PaidTTC)
	assert.Nil(t, summary.LastUpdated)
}

func TestExportCSV(t *testing.T) {
	repo := &MockBookingRepository{
		GetWithFilterFunc: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			return []*domain.Booking{
				paidBooking(1, domain.PaymentOnline, 47.6),
				pendingBooking(2, 35.7),
			}, nil
		},
	}
	svc := NewService(repo, &MockMetaRepository{}, nopLogger{})

	export, err := svc.ExportCSV(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2, export.Rows)
	assert.True(t, strings.HasPrefix(export.Filename, "reservations_"))
	assert.True(t, strings.HasSuffix(export.Filename, ".csv"))

	lines := strings.Split(strings.TrimRight(string(export.Data), "\r\n"), "\r\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Equal(t,
		`"Date","Heure","Salle","Enseignant","Matière","Étudiants","Durée","Contact","Coût HT","TVA","Total TTC","Statut"`,
		lines[0])

	// Every field double-quoted, fixed column order.
	assert.Contains(t, lines[1], `"2026-09-07","09:00","Salle 1","Mme Gharbi","Anglais","3","2.0h"`)
	assert.Contains(t, lines[1], `"paid"`)
	assert.Contains(t, lines[2], `"pending"`)
}

func TestExportCSV_QuotesAreDoubled(t *testing.T) {
	repo := &MockBookingRepository{
		GetWithFilterFunc: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			b := pendingBooking(1, 35.7)
			b.Subject = `Franç"ais`
			return []*domain.Booking{b}, nil
		},
	}
	svc := NewService(repo, &MockMetaRepository{}, nopLogger{})

	export, err := svc.ExportCSV(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Contains(t, string(export.Data), `"Franç""ais"`)
}

func TestExportCSV_EmptySetStillHasHeader(t *testing.T) {
	svc := NewService(&MockBookingRepository{}, &MockMetaRepository{}, nopLogger{})

	export, err := svc.ExportCSV(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 0, export.Rows)
	lines := strings.Split(strings.TrimRight(string(export.Data), "\r\n"), "\r\n")
	assert.Len(t, lines, 1)
}
