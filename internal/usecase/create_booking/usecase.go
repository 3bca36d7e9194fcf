package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
	"github.com/jalelchniti/smarthub-booking/pkg/types"
)

// UseCase creates bookings. The client-side availability check and the
// submission are separate requests, so the conflict check is repeated
// here inside a serializable transaction that locks the day's rows;
// two simultaneous submissions for the same créneau cannot both commit.
type UseCase struct {
	bookingRepo  BookingRepository
	metaRepo     MetaRepository
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking-creation use case.
func NewUseCase(
	bookingRepo BookingRepository,
	metaRepo MetaRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		metaRepo:     metaRepo,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates, re-checks the conflict server-side and persists
// the booking with its fee snapshot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%s, date=%s, start=%s, duration=%.1f, teacher=%s, students=%d",
		req.RoomID, req.Date.Format(domain.DateFormat), req.StartSlot, req.DurationHours,
		req.TeacherName, req.StudentCount)

	now := uc.timeProvider.Now()

	// 1. Validate input.
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Expand the créneau. A catalog overrun fails the submission.
	candidate, err := domain.OccupiedSlots(req.StartSlot, req.DurationHours, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotEnoughSlots):
			uc.logger.Warn("CreateBooking: créneau overruns catalog: start=%s duration=%.1f",
				req.StartSlot, req.DurationHours)
			return nil, ErrNotEnoughSlots
		case errors.Is(err, domain.ErrSlotNotInCatalog):
			return nil, fmt.Errorf("%w: start slot %s not in catalog", ErrInvalidInput, req.StartSlot)
		default:
			return nil, fmt.Errorf("%w: expand créneau: %v", ErrInternal, err)
		}
	}

	// 3. Compute the fee snapshot. Immutable once stored.
	fee, err := domain.CalculateBookingFees(req.RoomID, req.StudentCount, req.DurationHours)
	if err != nil {
		uc.logger.Error("CreateBooking: fee calculation failed: %v", err)
		return nil, fmt.Errorf("%w: fee calculation: %v", ErrInternal, err)
	}

	status := req.Status
	if status == "" {
		status = domain.PaymentPending
	}

	var result *domain.Booking

	// 4. Conflict re-check and insert in one serializable transaction.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.BookingsFilter{
			RoomID: &req.RoomID,
			Date:   &req.Date,
		}

		existing, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if conflict := firstConflict(candidate, existing); conflict != nil {
			uc.logger.Warn("CreateBooking: slot %s already booked for room=%s date=%s",
				*conflict, req.RoomID, req.Date.Format(domain.DateFormat))
			return ErrSlotConflict
		}

		booking := &domain.Booking{
			RoomID:        req.RoomID,
			Date:          req.Date,
			StartSlot:     req.StartSlot,
			DurationHours: req.DurationHours,
			TeacherName:   req.TeacherName,
			Subject:       req.Subject,
			StudentCount:  req.StudentCount,
			ContactInfo:   req.ContactInfo,
			Status:        status,
			Fee:           fee,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		if err := uc.metaRepo.TouchLastUpdated(txCtx); err != nil {
			uc.logger.Error("CreateBooking: failed to touch last_updated: %v", err)
			return fmt.Errorf("%w: failed to touch last_updated: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f TTC", result.ID, result.Fee.TotalTTC)

	// 5. Push the fresh snapshot to dashboard subscribers.
	uc.notifier.PublishSnapshot(ctx)

	return &Response{
		ID:            result.ID,
		RoomID:        result.RoomID,
		Date:          result.Date,
		StartSlot:     result.StartSlot,
		DurationHours: result.DurationHours,
		TeacherName:   result.TeacherName,
		Subject:       result.Subject,
		StudentCount:  result.StudentCount,
		ContactInfo:   result.ContactInfo,
		Status:        result.Status,
		Fee:           result.Fee,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// firstConflict returns the first candidate slot occupied by an active
// booking, or nil when the créneau is free.
func firstConflict(candidate []types.TimeString, existing []*domain.Booking) *types.TimeString {
	occupied := make(map[types.TimeString]struct{})
	for _, b := range existing {
		if !b.IsActive() {
			continue
		}
		slots, err := b.OccupiedSlots()
		if err != nil {
			continue
		}
		for _, s := range slots {
			occupied[s] = struct{}{}
		}
	}

	for _, s := range candidate {
		if _, ok := occupied[s]; ok {
			return &s
		}
	}
	return nil
}
