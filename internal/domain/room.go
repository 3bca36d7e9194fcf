package domain

import "errors"

// ErrRoomNotFound is returned for an unknown room id. The historic
// behaviour of silently pricing unknown rooms at zero was a latent bug
// and is deliberately not preserved.
var ErrRoomNotFound = errors.New("domain: room not found")

// PricingTier maps an inclusive occupancy range to an hourly rate.
type PricingTier struct {
	MinStudents int
	MaxStudents int
	HourlyRate  float64
}

// Room describes a bookable room and its occupancy-tier pricing.
// Tiers are ordered and partition 1..Capacity without gaps.
type Room struct {
	ID       string
	Name     string
	Capacity int
	Tiers    []PricingTier
}

// HourlyRate returns the rate of the first tier containing studentCount.
// Counts above the last tier fall back to the last tier's rate.
func (r *Room) HourlyRate(studentCount int) float64 {
	for _, tier := range r.Tiers {
		if studentCount >= tier.MinStudents && studentCount <= tier.MaxStudents {
			return tier.HourlyRate
		}
	}
	return r.Tiers[len(r.Tiers)-1].HourlyRate
}

// Rooms is the center's room catalog. Pricing and slot geometry used to
// live as duplicated constant tables in the booking page and the admin
// dashboard; this is the single shared copy both sides now consume.
var Rooms = []Room{
	{
		ID:       "1",
		Name:     "Salle 1",
		Capacity: 9,
		Tiers: []PricingTier{
			{MinStudents: 1, MaxStudents: 2, HourlyRate: 15},
			{MinStudents: 3, MaxStudents: 4, HourlyRate: 20},
			{MinStudents: 5, MaxStudents: 9, HourlyRate: 25},
		},
	},
	{
		ID:       "2",
		Name:     "Salle 2",
		Capacity: 9,
		Tiers: []PricingTier{
			{MinStudents: 1, MaxStudents: 4, HourlyRate: 15},
			{MinStudents: 5, MaxStudents: 8, HourlyRate: 20},
			{MinStudents: 9, MaxStudents: 9, HourlyRate: 25},
		},
	},
	{
		ID:       "3",
		Name:     "Salle 3",
		Capacity: 20,
		Tiers: []PricingTier{
			{MinStudents: 1, MaxStudents: 9, HourlyRate: 25},
			{MinStudents: 10, MaxStudents: 20, HourlyRate: 30},
		},
	},
}

// RoomByID looks a room up in the catalog.
func RoomByID(id string) (*Room, error) {
	for i := range Rooms {
		if Rooms[i].ID == id {
			return &Rooms[i], nil
		}
	}
	return nil, ErrRoomNotFound
}

// HourlyRate returns the hourly rate for a room and occupancy.
func HourlyRate(roomID string, studentCount int) (float64, error) {
	room, err := RoomByID(roomID)
	if err != nil {
		return 0, err
	}
	return room.HourlyRate(studentCount), nil
}
