package list_rooms

import (
	"net/http"

	"github.com/jalelchniti/smarthub-booking/internal/api/handlers"
	"github.com/jalelchniti/smarthub-booking/internal/domain"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// PricingTierResponse HTTP model of one occupancy tier.
type PricingTierResponse struct {
	MinStudents int     `json:"minStudents"`
	MaxStudents int     `json:"maxStudents"`
	HourlyRate  float64 `json:"hourlyRate"`
}

// RoomResponse HTTP model of one catalog room.
type RoomResponse struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Capacity int                   `json:"capacity"`
	Tiers    []PricingTierResponse `json:"pricingTiers"`
}

// RoomListResponse HTTP model of the catalog.
type RoomListResponse struct {
	Rooms   []RoomResponse `json:"rooms"`
	VATRate float64        `json:"vatRate"`
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms := make([]RoomResponse, len(domain.Rooms))
	for i, room := range domain.Rooms {
		tiers := make([]PricingTierResponse, len(room.Tiers))
		for j, tier := range room.Tiers {
			tiers[j] = PricingTierResponse{
				MinStudents: tier.MinStudents,
				MaxStudents: tier.MaxStudents,
				HourlyRate:  tier.HourlyRate,
			}
		}
		rooms[i] = RoomResponse{
			ID:       room.ID,
			Name:     room.Name,
			Capacity: room.Capacity,
			Tiers:    tiers,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, &RoomListResponse{
		Rooms:   rooms,
		VATRate: domain.VATRate,
	})
}
