package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRooms(t *testing.T) {
	rooms := DefaultRooms()
	assert.Len(t, rooms, 30)

	for i, room := range rooms {
		assert.Equal(t, uint(i+1), room.ID)
		assert.Equal(t, i+1, room.Number)
		assert.Equal(t, RoomTypes[i%4], room.Type)
		assert.Equal(t, DefaultPrices[room.Type], room.Price)
		assert.Equal(t, Vacant, room.Occupant)
		assert.True(t, room.Valid())
	}
}

func TestRoomValid(t *testing.T) {
	room := Room{ID: 1, Number: 1, Type: "Standard", Price: 1000, Occupant: Vacant}
	assert.True(t, room.Valid())

	for _, broken := range []Room{
		{Number: 1, Type: "Standard", Price: 1000, Occupant: Vacant},
		{ID: 1, Type: "Standard", Price: 1000, Occupant: Vacant},
		{ID: 1, Number: 1, Price: 1000, Occupant: Vacant},
		{ID: 1, Number: 1, Type: "Standard", Occupant: Vacant},
		{ID: 1, Number: 1, Type: "Standard", Price: 1000},
	} {
		assert.False(t, broken.Valid())
	}
}

func TestBookingValidEnforcesTotalInvariant(t *testing.T) {
	booking := Booking{
		ID: 1, GuestName: "Asha", RoomID: 5, RoomNumber: 5,
		CheckIn: "2024-01-01", CheckOut: "2024-01-04",
		Nights: 3, Rate: 1000, Extras: 0, Tax: 360, Total: 3360,
	}
	assert.True(t, booking.Valid())

	booking.Total = 3000
	assert.False(t, booking.Valid())
}
