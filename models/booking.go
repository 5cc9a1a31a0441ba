package models

import "time"

// DateLayout is the calendar-date encoding used for stay dates.
const DateLayout = "2006-01-02"

// Booking is one stay record. Room number and type are snapshots taken at
// check-in time so history survives later room edits.
type Booking struct {
	ID  uint   `json:"id"`
	Ref string `json:"ref"`

	GuestName string `json:"guestName"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`

	RoomID     uint   `json:"roomId"`
	RoomNumber int    `json:"roomNumber"`
	RoomType   string `json:"roomType"`

	CheckIn  string `json:"checkin"`
	CheckOut string `json:"checkout"`
	Nights   int    `json:"nights"`

	Rate   float64 `json:"rate"`
	Extras float64 `json:"extras"`
	Tax    float64 `json:"tax"`
	Total  float64 `json:"total"`

	CreatedAt time.Time `json:"createdAt"`
	Active    bool      `json:"active"`
}

// Valid reports whether a decoded booking has the shape required by the
// engine. Load falls back to empty history when any booking fails this.
func (b Booking) Valid() bool {
	if b.ID == 0 || b.GuestName == "" || b.RoomID == 0 || b.RoomNumber <= 0 {
		return false
	}
	if b.CheckIn == "" || b.CheckOut == "" || b.Nights < 1 {
		return false
	}
	return b.Total == b.Rate*float64(b.Nights)+b.Extras+b.Tax
}
