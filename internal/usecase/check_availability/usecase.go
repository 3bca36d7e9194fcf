package check_availability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jalelchniti/smarthub-booking/internal/domain"
	"github.com/jalelchniti/smarthub-booking/pkg/types"
)

const (
	msgNotEnoughSlots = "pas assez de créneaux consécutifs avant la fermeture"
	msgSlotUnknown    = "horaire de début inconnu pour cette journée"
	msgConflictFmt    = "créneau indisponible, horaires déjà réservés : %s"
	msgTrailingChunk  = "sélection incomplète : le dernier créneau n'a pas assez d'horaires"
)

// UseCase answers availability questions for candidate créneaux.
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase creates the availability use case.
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute checks one candidate créneau against the room's bookings for
// that day. On conflict, the response carries the taken slot labels and
// up to three alternative start times.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%s, date=%s, start=%s, duration=%.1f",
		req.RoomID, req.Date.Format(domain.DateFormat), req.StartSlot, req.DurationHours)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	candidate, err := domain.OccupiedSlots(req.StartSlot, req.DurationHours, req.Date)
	if err != nil {
		// A catalog overrun is an unavailability verdict, not an error:
		// the créneau never wraps into a different day or catalog.
		switch {
		case errors.Is(err, domain.ErrNotEnoughSlots):
			return &Response{Message: msgNotEnoughSlots}, nil
		case errors.Is(err, domain.ErrSlotNotInCatalog):
			return &Response{Message: msgSlotUnknown}, nil
		default:
			return nil, fmt.Errorf("%w: expand créneau: %v", ErrInternal, err)
		}
	}

	occupied, err := uc.occupiedForDay(ctx, req.RoomID, req.Date)
	if err != nil {
		return nil, err
	}

	conflicts := conflictingSlots(candidate, occupied)
	if len(conflicts) == 0 {
		return &Response{IsAvailable: true}, nil
	}

	uc.logger.Info("CheckAvailability: %d conflicting slots for room=%s date=%s start=%s",
		len(conflicts), req.RoomID, req.Date.Format(domain.DateFormat), req.StartSlot)

	return &Response{
		Message:        fmt.Sprintf(msgConflictFmt, joinSlots(conflicts)),
		SuggestedSlots: suggestAlternatives(req.Date, req.DurationHours, occupied, req.StartSlot),
	}, nil
}

// ExecuteBatch validates a multi-créneau selection. The flat slot list
// is grouped into créneaux of duration×2 entries; each créneau is
// judged independently and the response reports the conflicting vs
// available counts without a global rollback.
func (uc *UseCase) ExecuteBatch(ctx context.Context, req *BatchRequest) (*BatchResponse, error) {
	uc.logger.Info("CheckAvailabilityBatch: room=%s, date=%s, slots=%d, duration=%.1f",
		req.RoomID, req.Date.Format(domain.DateFormat), len(req.Slots), req.DurationHours)

	if err := validateBatchRequest(req); err != nil {
		uc.logger.Warn("CheckAvailabilityBatch: validation failed: %v", err)
		return nil, err
	}

	occupied, err := uc.occupiedForDay(ctx, req.RoomID, req.Date)
	if err != nil {
		return nil, err
	}

	perCreneau := domain.SlotsPerCreneau(req.DurationHours)
	chunks := chunkCreneaux(req.Slots, perCreneau)

	resp := &BatchResponse{
		Total:   len(chunks),
		Results: make([]CreneauResult, 0, len(chunks)),
	}

	for _, chunk := range chunks {
		result := CreneauResult{StartSlot: chunk[0]}

		switch {
		case len(chunk) < perCreneau:
			result.Message = msgTrailingChunk
		default:
			candidate, err := domain.OccupiedSlots(chunk[0], req.DurationHours, req.Date)
			switch {
			case errors.Is(err, domain.ErrNotEnoughSlots):
				result.Message = msgNotEnoughSlots
			case errors.Is(err, domain.ErrSlotNotInCatalog):
				result.Message = msgSlotUnknown
			case err != nil:
				return nil, fmt.Errorf("%w: expand créneau: %v", ErrInternal, err)
			default:
				if conflicts := conflictingSlots(candidate, occupied); len(conflicts) > 0 {
					result.Message = fmt.Sprintf(msgConflictFmt, joinSlots(conflicts))
				} else {
					result.IsAvailable = true
				}
			}
		}

		if result.IsAvailable {
			resp.Available++
		} else {
			resp.Conflicting++
		}
		resp.Results = append(resp.Results, result)
	}

	uc.logger.Info("CheckAvailabilityBatch: %d/%d créneaux available for room=%s date=%s",
		resp.Available, resp.Total, req.RoomID, req.Date.Format(domain.DateFormat))

	return resp, nil
}

// occupiedForDay loads the room's active bookings for one day and
// folds them into an occupied-slot set.
func (uc *UseCase) occupiedForDay(ctx context.Context, roomID string, date time.Time) (map[types.TimeString]struct{}, error) {
	filter := domain.BookingsFilter{
		RoomID: &roomID,
		Date:   &date,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return occupiedSlotSet(bookings), nil
}

func joinSlots(slots []types.TimeString) string {
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.String()
	}
	return strings.Join(labels, ", ")
}
