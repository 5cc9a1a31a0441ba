package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/models"
	"frontdesk-backend/storage"
)

func TestLoadStateSeedsWhenEmpty(t *testing.T) {
	rooms, bookings, ui := LoadState(context.Background(), storage.NewMemoryStore())

	assert.Len(t, rooms, 30)
	assert.Empty(t, bookings)
	assert.Equal(t, models.DefaultUIState(), ui)

	// seeded inventory cycles through the four types
	assert.Equal(t, "Standard", rooms[0].Type)
	assert.Equal(t, "AC", rooms[1].Type)
	assert.Equal(t, "Deluxe", rooms[2].Type)
	assert.Equal(t, "Non-AC", rooms[3].Type)
	assert.Equal(t, "Standard", rooms[4].Type)
}

func TestLoadStateRoundTripsSavedState(t *testing.T) {
	ctx := context.Background()
	gw := storage.NewMemoryStore()

	saved := models.DefaultRooms()
	saved[4].Occupant = "Asha"
	blob, _ := json.Marshal(saved)
	require.NoError(t, gw.Set(ctx, storage.KeyRooms, blob))

	savedUI := models.UIState{Filter: models.FilterBooked, Category: "AC", Search: "2", Page: 2, PageSize: 5, Dark: true}
	blob, _ = json.Marshal(savedUI)
	require.NoError(t, gw.Set(ctx, storage.KeyUI, blob))

	rooms, _, ui := LoadState(ctx, gw)
	assert.Equal(t, "Asha", rooms[4].Occupant)
	assert.Equal(t, savedUI, ui)
}

func TestLoadStateFallsBackOnCorruptBlobs(t *testing.T) {
	ctx := context.Background()
	gw := storage.NewMemoryStore()
	require.NoError(t, gw.Set(ctx, storage.KeyRooms, []byte("{not json")))
	require.NoError(t, gw.Set(ctx, storage.KeyBookings, []byte("42")))
	require.NoError(t, gw.Set(ctx, storage.KeyUI, []byte(`{"filter":"Nope"}`)))

	rooms, bookings, ui := LoadState(ctx, gw)
	assert.Len(t, rooms, 30)
	assert.Equal(t, models.Vacant, rooms[0].Occupant)
	assert.Empty(t, bookings)
	assert.Equal(t, models.DefaultUIState(), ui)
}

func TestLoadStateRejectsWrongShapes(t *testing.T) {
	ctx := context.Background()
	gw := storage.NewMemoryStore()

	// parses fine but fails validation: non-positive price
	bad := models.DefaultRooms()
	bad[7].Price = -1
	blob, _ := json.Marshal(bad)
	require.NoError(t, gw.Set(ctx, storage.KeyRooms, blob))

	// two active bookings for one room break the occupancy invariant
	stays := []models.Booking{draftFor(3, "Asha"), draftFor(3, "Ravi")}
	for i := range stays {
		stays[i].ID = uint(i + 1)
		stays[i].Active = true
	}
	blob, _ = json.Marshal(stays)
	require.NoError(t, gw.Set(ctx, storage.KeyBookings, blob))

	rooms, bookings, _ := LoadState(ctx, gw)
	assert.Equal(t, models.DefaultPrices["Non-AC"], rooms[7].Price)
	assert.Empty(t, bookings)
}
