package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
	"github.com/jalelchniti/smarthub-booking/internal/service/bookings/models"
)

// Service is the read side of the admin dashboard: filtered listings,
// revenue totals and the CSV export.
type Service struct {
	bookingRepo BookingRepository
	metaRepo    MetaRepository
	logger      Logger
}

// NewService creates an admin service.
func NewService(bookingRepo BookingRepository, metaRepo MetaRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		metaRepo:    metaRepo,
		logger:      logger,
	}
}

// Summary aggregates revenue over the filtered booking set.
type Summary struct {
	TotalBookings int     `json:"totalBookings"`
	PaidCount     int     `json:"paidCount"`
	PendingCount  int     `json:"pendingCount"`
	PaidTTC       float64 `json:"paidTTC"`
	PendingTTC    float64 `json:"pendingTTC"`
	OnlineTTC     float64 `json:"onlineTTC"`
	OfflineTTC    float64 `json:"offlineTTC"`
	LastUpdated   *string `json:"lastUpdated,omitempty"`
}

// Summarize folds paid-vs-pending and online-vs-offline totals over
// the filtered set. Cancelled bookings are excluded like everywhere
// else on the read side.
func (s *Service) Summarize(ctx context.Context, req *models.ListBookingsRequest) (*Summary, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("Summarize: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Summarize: repository error: %v", err)
		return nil, fmt.Errorf("%w: Summarize - repository error: %v", ErrInternal, err)
	}

	summary := &Summary{TotalBookings: len(bookings)}

	for _, b := range bookings {
		switch b.Status {
		case domain.PaymentPaid:
			summary.PaidCount++
			summary.PaidTTC += b.Fee.TotalTTC
			if b.PaymentMethod != nil {
				switch *b.PaymentMethod {
				case domain.PaymentOnline:
					summary.OnlineTTC += b.Fee.TotalTTC
				case domain.PaymentOffline:
					summary.OfflineTTC += b.Fee.TotalTTC
				}
			}
		case domain.PaymentPending:
			summary.PendingCount++
			summary.PendingTTC += b.Fee.TotalTTC
		}
	}

	if lastUpdated, err := s.metaRepo.GetLastUpdated(ctx); err != nil {
		s.logger.Error("Summarize: failed to read last_updated: %v", err)
	} else if !lastUpdated.IsZero() {
		formatted := lastUpdated.Format(time.RFC3339)
		summary.LastUpdated = &formatted
	}

	s.logger.Info("Summarize: %d bookings, paid=%.2f pending=%.2f", summary.TotalBookings, summary.PaidTTC, summary.PendingTTC)
	return summary, nil
}
