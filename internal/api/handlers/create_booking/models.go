package create_booking

import (
	"time"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
	createBooking "github.com/jalelchniti/smarthub-booking/internal/usecase/create_booking"
	"github.com/jalelchniti/smarthub-booking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID       string  `json:"roomId"`
	Date         string  `json:"date"`     // "2026-09-15"
	TimeSlot     string  `json:"timeSlot"` // "09:00"
	Duration     float64 `json:"duration"` // hours, 1.5 .. 3.0
	TeacherName  string  `json:"teacherName"`
	Subject      string  `json:"subject"`
	StudentCount int     `json:"studentCount"`
	ContactInfo  string  `json:"contactInfo"`
	Status       *string `json:"status,omitempty"` // admin imports only
}

// FeeResponse HTTP fee breakdown model
type FeeResponse struct {
	HourlyRate float64 `json:"hourlyRate"`
	SubtotalHT float64 `json:"subtotalHT"`
	VATAmount  float64 `json:"vatAmount"`
	TotalTTC   float64 `json:"totalTTC"`
	VATRate    float64 `json:"vatRate"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64       `json:"id"`
	RoomID        string      `json:"roomId"`
	Date          string      `json:"date"`
	TimeSlot      string      `json:"timeSlot"`
	Duration      float64     `json:"duration"`
	TeacherName   string      `json:"teacherName"`
	Subject       string      `json:"subject"`
	StudentCount  int         `json:"studentCount"`
	ContactInfo   string      `json:"contactInfo"`
	PaymentStatus string      `json:"paymentStatus"`
	Fee           FeeResponse `json:"feeCalculation"`
	CreatedAt     string      `json:"createdAt"`
	UpdatedAt     string      `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the date and start time.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		RoomID:        r.RoomID,
		Date:          date,
		StartSlot:     startSlot,
		DurationHours: r.Duration,
		TeacherName:   r.TeacherName,
		Subject:       r.Subject,
		StudentCount:  r.StudentCount,
		ContactInfo:   r.ContactInfo,
	}
	if r.Status != nil {
		req.Status = domain.PaymentStatus(*r.Status)
	}

	return req, nil
}

// FromUseCaseResponse converts the use case result into the HTTP
// response.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		RoomID:        resp.RoomID,
		Date:          resp.Date.Format(domain.DateFormat),
		TimeSlot:      resp.StartSlot.String(),
		Duration:      resp.DurationHours,
		TeacherName:   resp.TeacherName,
		Subject:       resp.Subject,
		StudentCount:  resp.StudentCount,
		ContactInfo:   resp.ContactInfo,
		PaymentStatus: string(resp.Status),
		Fee: FeeResponse{
			HourlyRate: resp.Fee.HourlyRate,
			SubtotalHT: resp.Fee.SubtotalHT,
			VATAmount:  resp.Fee.VATAmount,
			TotalTTC:   resp.Fee.TotalTTC,
			VATRate:    resp.Fee.VATRate,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
