package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
	"github.com/jalelchniti/smarthub-booking/internal/service/bookings/models"
)

// ParseBookingFilter builds a listing filter from query parameters.
// Supported: room, date (YYYY-MM-DD), status, search,
// includeCancelled.
func ParseBookingFilter(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if room := query.Get("room"); room != "" {
		req.RoomID = &room
	}

	if rawDate := query.Get("date"); rawDate != "" {
		date, err := time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", rawDate, err)
		}
		req.Date = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if search := query.Get("search"); search != "" {
		req.Search = &search
	}

	if raw := query.Get("includeCancelled"); raw != "" {
		includeCancelled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled %q: %w", raw, err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
