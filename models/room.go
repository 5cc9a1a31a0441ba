package models

// Vacant is the occupant sentinel meaning no guest is assigned to the room.
const Vacant = "Empty"

// RoomTypes in seeding order. Room types are free-form after an edit; this
// list only drives the seeded inventory and the category dropdown.
var RoomTypes = []string{"Standard", "AC", "Deluxe", "Non-AC"}

// DefaultPrices maps a room type to its standard nightly rate. Used when
// seeding and as the billing fallback for rooms with a non-positive price.
var DefaultPrices = map[string]float64{
	"Standard": 1000,
	"AC":       1500,
	"Deluxe":   2500,
	"Non-AC":   800,
}

type Room struct {
	ID       uint    `json:"id"`
	Number   int     `json:"number"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Occupant string  `json:"occupant"`
}

func (r Room) Occupied() bool {
	return r.Occupant != Vacant
}

// Valid reports whether a decoded room has the shape required by the
// engine. Load falls back to the seeded inventory when any room fails this.
func (r Room) Valid() bool {
	return r.ID != 0 && r.Number > 0 && r.Type != "" && r.Price > 0 && r.Occupant != ""
}

// DefaultRooms builds the seeded inventory: 30 rooms cycling through the
// four room types, room number tracking the id.
func DefaultRooms() []Room {
	rooms := make([]Room, 0, 30)
	for i := 1; i <= 30; i++ {
		t := RoomTypes[(i-1)%len(RoomTypes)]
		rooms = append(rooms, Room{
			ID:       uint(i),
			Number:   i,
			Type:     t,
			Price:    DefaultPrices[t],
			Occupant: Vacant,
		})
	}
	return rooms
}
