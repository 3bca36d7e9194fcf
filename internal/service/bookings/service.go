package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
	bookingRepo "github.com/jalelchniti/smarthub-booking/internal/infra/storage/booking"
	"github.com/jalelchniti/smarthub-booking/internal/service/bookings/models"
	"github.com/jalelchniti/smarthub-booking/pkg/ptr"
)

// Service owns the booking lifecycle after creation: reads, the soft
// cancel used by the booking flows, payment transitions, and the hard
// deletes reserved for admin cleanup.
type Service struct {
	bookingRepo BookingRepository
	metaRepo    MetaRepository
	hub         Hub
	logger      Logger
}

// NewService creates a booking service.
func NewService(
	bookingRepo BookingRepository,
	metaRepo MetaRepository,
	hub Hub,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		metaRepo:    metaRepo,
		hub:         hub,
		logger:      logger,
	}
}

// GetByID fetches one booking.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List fetches bookings matching the filter. Cancelled rows are hidden
// unless explicitly requested.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel performs the soft cancellation: the row keeps its history but
// its slots are freed for new bookings. Hard removal is Delete.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)
	return s.transition(ctx, id, domain.PaymentCancelled)
}

// UpdatePaymentStatus applies an admin status change, enforcing the
// legal transition table.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id int64, status string) error {
	newStatus, err := models.ToDomainPaymentStatus(status)
	if err != nil {
		s.logger.Warn("UpdatePaymentStatus: invalid status=%s for booking id=%d", status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	s.logger.Info("UpdatePaymentStatus: booking id=%d -> %s", id, newStatus)
	return s.transition(ctx, id, newStatus)
}

func (s *Service) transition(ctx context.Context, id int64, to domain.PaymentStatus) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("transition: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: transition - repository error: %v", ErrInternal, err)
	}

	if !domain.CanTransition(booking.Status, to) {
		s.logger.Warn("transition: illegal %s -> %s for booking id=%d", booking.Status, to, id)
		return ErrIllegalTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, to); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("transition: update failed for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: transition - update failed: %v", ErrInternal, err)
	}

	s.afterMutation(ctx)
	return nil
}

// ConfirmPayment marks a booking paid with its method and optional
// provider transaction id. Online confirmations without an id get a
// generated one so the payment stays traceable.
func (s *Service) ConfirmPayment(ctx context.Context, id int64, method string, transactionID *string) error {
	paymentMethod := domain.PaymentMethod(method)
	if paymentMethod != domain.PaymentOnline && paymentMethod != domain.PaymentOffline {
		s.logger.Warn("ConfirmPayment: invalid method=%s for booking id=%d", method, id)
		return fmt.Errorf("%w: invalid payment method", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("ConfirmPayment: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: ConfirmPayment - repository error: %v", ErrInternal, err)
	}

	if !domain.CanTransition(booking.Status, domain.PaymentPaid) {
		s.logger.Warn("ConfirmPayment: illegal %s -> paid for booking id=%d", booking.Status, id)
		return ErrIllegalTransition
	}

	if transactionID == nil && paymentMethod == domain.PaymentOnline {
		transactionID = ptr.Ptr(uuid.NewString())
	}

	if err := s.bookingRepo.ConfirmPayment(ctx, id, paymentMethod, transactionID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("ConfirmPayment: update failed for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: ConfirmPayment - update failed: %v", ErrInternal, err)
	}

	s.logger.Info("ConfirmPayment: booking id=%d paid via %s", id, paymentMethod)
	s.afterMutation(ctx)
	return nil
}

// Delete removes a booking physically. The booking flows never call
// this; cancellation is the soft transition above.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d removed", id)
	s.afterMutation(ctx)
	return nil
}

// BulkDelete removes the given bookings best-effort. Failures are
// collected per id; already-applied deletes are not rolled back.
func (s *Service) BulkDelete(ctx context.Context, ids []int64) (*models.BulkDeleteResult, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: empty id list", ErrInvalidInput)
	}

	result := &models.BulkDeleteResult{}

	for _, id := range ids {
		if err := s.bookingRepo.Delete(ctx, id); err != nil {
			reason := "internal error"
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				reason = "booking not found"
			} else {
				s.logger.Error("BulkDelete: delete failed for id=%d: %v", id, err)
			}
			result.Errors = append(result.Errors, models.BulkDeleteError{ID: id, Reason: reason})
			continue
		}
		result.Deleted++
	}

	s.logger.Info("BulkDelete: deleted %d/%d bookings", result.Deleted, len(ids))

	if result.Deleted > 0 {
		s.afterMutation(ctx)
	}

	return result, nil
}

// SnapshotJSON serializes the current non-cancelled booking set. This
// is the payload pushed to dashboard subscribers.
func (s *Service) SnapshotJSON(ctx context.Context) ([]byte, error) {
	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: SnapshotJSON - repository error: %v", ErrInternal, err)
	}

	data, err := json.Marshal(models.FromDomainBookingList(bookings))
	if err != nil {
		return nil, fmt.Errorf("%w: SnapshotJSON - marshal: %v", ErrInternal, err)
	}
	return data, nil
}

// PublishSnapshot pushes the current snapshot to all subscribers.
// Best-effort: a failure is logged, never propagated, since the
// mutation that triggered it already committed.
func (s *Service) PublishSnapshot(ctx context.Context) {
	data, err := s.SnapshotJSON(ctx)
	if err != nil {
		s.logger.Error("PublishSnapshot: %v", err)
		return
	}
	s.hub.Publish(data)
}

// afterMutation touches the last_updated marker and broadcasts the new
// snapshot.
func (s *Service) afterMutation(ctx context.Context) {
	if err := s.metaRepo.TouchLastUpdated(ctx); err != nil {
		s.logger.Error("afterMutation: failed to touch last_updated: %v", err)
	}
	s.PublishSnapshot(ctx)
}
