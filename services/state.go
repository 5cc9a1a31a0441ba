package services

import (
	"context"
	"encoding/json"
	"log"

	"frontdesk-backend/models"
	"frontdesk-backend/storage"
)

// LoadState reads the three persisted collections from the gateway. A key
// that is absent, unreadable or fails shape validation falls back to its
// default: the seeded 30-room inventory, empty history, default UI state.
// Degraded reads are logged but never surfaced; startup always succeeds.
func LoadState(ctx context.Context, gw storage.Gateway) ([]models.Room, []models.Booking, models.UIState) {
	rooms := models.DefaultRooms()
	if blob, found, err := gw.Get(ctx, storage.KeyRooms); err != nil {
		log.Printf("⚠️  failed to read rooms, using seeded inventory: %v", err)
	} else if found {
		var decoded []models.Room
		if json.Unmarshal(blob, &decoded) != nil || !validRooms(decoded) {
			log.Println("⚠️  stored rooms are unusable, using seeded inventory")
		} else {
			rooms = decoded
		}
	}

	bookings := []models.Booking{}
	if blob, found, err := gw.Get(ctx, storage.KeyBookings); err != nil {
		log.Printf("⚠️  failed to read bookings, starting with empty history: %v", err)
	} else if found {
		var decoded []models.Booking
		if json.Unmarshal(blob, &decoded) != nil || !validBookings(decoded) {
			log.Println("⚠️  stored bookings are unusable, starting with empty history")
		} else if decoded != nil {
			bookings = decoded
		}
	}

	ui := models.DefaultUIState()
	if blob, found, err := gw.Get(ctx, storage.KeyUI); err != nil {
		log.Printf("⚠️  failed to read ui preferences, using defaults: %v", err)
	} else if found {
		var decoded models.UIState
		if json.Unmarshal(blob, &decoded) != nil || !decoded.Valid() {
			log.Println("⚠️  stored ui preferences are unusable, using defaults")
		} else {
			ui = decoded
		}
	}

	return rooms, bookings, ui
}

func validRooms(rooms []models.Room) bool {
	if len(rooms) == 0 {
		return false
	}
	seen := make(map[uint]bool, len(rooms))
	for _, r := range rooms {
		if !r.Valid() || seen[r.ID] {
			return false
		}
		seen[r.ID] = true
	}
	return true
}

func validBookings(bookings []models.Booking) bool {
	active := map[uint]bool{}
	for _, b := range bookings {
		if !b.Valid() {
			return false
		}
		if b.Active {
			// at most one active booking per room
			if active[b.RoomID] {
				return false
			}
			active[b.RoomID] = true
		}
	}
	return true
}
