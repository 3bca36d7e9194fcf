package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
	createBooking "github.com/jalelchniti/smarthub-booking/internal/usecase/create_booking"
)

// MockUseCase is a mock implementation of CreateBookingUseCase
type MockUseCase struct {
	ExecuteFunc func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

func (m *MockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, req)
	}
	return nil, createBooking.ErrInternal
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const validBody = `{
	"roomId": "2",
	"date": "2099-01-05",
	"timeSlot": "09:00",
	"duration": 2.0,
	"teacherName": "Mme Trabelsi",
	"subject": "Mathématiques",
	"studentCount": 5,
	"contactInfo": "trabelsi@example.com"
}`

func post(t *testing.T, handler *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &MockUseCase{
		ExecuteFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			assert.Equal(t, "2", req.RoomID)
			assert.Equal(t, 2.0, req.DurationHours)
			return &createBooking.Response{
				ID:            1,
				RoomID:        req.RoomID,
				Date:          req.Date,
				StartSlot:     req.StartSlot,
				DurationHours: req.DurationHours,
				TeacherName:   req.TeacherName,
				Subject:       req.Subject,
				StudentCount:  req.StudentCount,
				ContactInfo:   req.ContactInfo,
				Status:        domain.PaymentPending,
				Fee: domain.FeeCalculation{
					HourlyRate: 20, SubtotalHT: 40, VATAmount: 7.6, TotalTTC: 47.6, VATRate: domain.VATRate,
				},
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		},
	}
	handler := NewHandler(uc, nopLogger{})

	rec := post(t, handler, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"timeSlot":"09:00"`)
	assert.Contains(t, rec.Body.String(), `"paymentStatus":"pending"`)
	assert.Contains(t, rec.Body.String(), `"totalTTC":47.6`)
}

func TestHandle_Conflict(t *testing.T) {
	uc := &MockUseCase{
		ExecuteFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			return nil, createBooking.ErrSlotConflict
		},
	}
	handler := NewHandler(uc, nopLogger{})

	rec := post(t, handler, validBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_UnknownRoom(t *testing.T) {
	uc := &MockUseCase{
		ExecuteFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			return nil, createBooking.ErrRoomNotFound
		},
	}
	handler := NewHandler(uc, nopLogger{})

	rec := post(t, handler, validBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	handler := NewHandler(&MockUseCase{}, nopLogger{})

	rec := post(t, handler, `{"roomId": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDate(t *testing.T) {
	handler := NewHandler(&MockUseCase{}, nopLogger{})

	rec := post(t, handler, strings.Replace(validBody, "2099-01-05", "05/01/2099", 1))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "date")
}

func TestHandle_BadTime(t *testing.T) {
	handler := NewHandler(&MockUseCase{}, nopLogger{})

	rec := post(t, handler, strings.Replace(validBody, "09:00", "9h00", 1))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "heure")
}

func TestHandle_InternalError(t *testing.T) {
	handler := NewHandler(&MockUseCase{}, nopLogger{})

	rec := post(t, handler, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
