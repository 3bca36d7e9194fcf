package models

import (
	"errors"
	"time"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
	"github.com/jalelchniti/smarthub-booking/pkg/ptr"
)

// ErrInvalidStatus is returned when a status string is unknown.
var ErrInvalidStatus = errors.New("invalid payment status")

// FeeResponse is the JSON shape of a fee breakdown.
type FeeResponse struct {
	HourlyRate float64 `json:"hourlyRate"`
	SubtotalHT float64 `json:"subtotalHT"`
	VATAmount  float64 `json:"vatAmount"`
	TotalTTC   float64 `json:"totalTTC"`
	VATRate    float64 `json:"vatRate"`
}

// BookingResponse is the JSON shape of a booking.
type BookingResponse struct {
	ID                   int64       `json:"id"`
	RoomID               string      `json:"roomId"`
	Date                 string      `json:"date"`      // YYYY-MM-DD
	StartSlot            string      `json:"timeSlot"`  // HH:MM
	DurationHours        float64     `json:"duration"`
	TeacherName          string      `json:"teacherName"`
	Subject              string      `json:"subject"`
	StudentCount         int         `json:"studentCount"`
	ContactInfo          string      `json:"contactInfo"`
	PaymentStatus        string      `json:"paymentStatus"`
	PaymentMethod        *string     `json:"paymentMethod,omitempty"`
	PaymentTransactionID *string     `json:"paymentTransactionId,omitempty"`
	PaymentAt            *string     `json:"paymentAt,omitempty"`
	Fee                  FeeResponse `json:"feeCalculation"`
	CreatedAt            string      `json:"createdAt"`
	UpdatedAt            string      `json:"updatedAt"`
}

// BookingListResponse is the JSON shape of a booking list.
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// ListBookingsRequest is the admin listing filter.
type ListBookingsRequest struct {
	RoomID           *string
	Date             *time.Time
	Status           *string
	Search           *string
	IncludeCancelled bool
}

// ToDomainFilter converts the request into a repository filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RoomID:           r.RoomID,
		Date:             r.Date,
		Search:           r.Search,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainPaymentStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// BulkDeleteError reports one failed item of a bulk delete.
type BulkDeleteError struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

// BulkDeleteResult reports a bulk-delete outcome. Partial success is a
// normal result, not an error.
type BulkDeleteResult struct {
	Deleted int               `json:"deleted"`
	Errors  []BulkDeleteError `json:"errors,omitempty"`
}

// ToDomainPaymentStatus validates and converts a status string.
func ToDomainPaymentStatus(s string) (domain.PaymentStatus, error) {
	status := domain.PaymentStatus(s)
	if !domain.ValidPaymentStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainBooking converts a domain booking to its JSON shape.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                   b.ID,
		RoomID:               b.RoomID,
		Date:                 b.Date.Format(domain.DateFormat),
		StartSlot:            b.StartSlot.String(),
		DurationHours:        b.DurationHours,
		TeacherName:          b.TeacherName,
		Subject:              b.Subject,
		StudentCount:         b.StudentCount,
		ContactInfo:          b.ContactInfo,
		PaymentStatus:        string(b.Status),
		PaymentTransactionID: b.PaymentTransactionID,
		Fee: FeeResponse{
			HourlyRate: b.Fee.HourlyRate,
			SubtotalHT: b.Fee.SubtotalHT,
			VATAmount:  b.Fee.VATAmount,
			TotalTTC:   b.Fee.TotalTTC,
			VATRate:    b.Fee.VATRate,
		},
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}

	if b.PaymentMethod != nil {
		resp.PaymentMethod = ptr.Ptr(string(*b.PaymentMethod))
	}
	if b.PaymentAt != nil {
		resp.PaymentAt = ptr.Ptr(b.PaymentAt.Format(time.RFC3339))
	}

	return resp
}

// FromDomainBookingList converts a booking slice to its JSON shape.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	items := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: items, Total: len(items)}
}
