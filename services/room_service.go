package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"frontdesk-backend/models"
	"frontdesk-backend/storage"
)

// RoomService owns the room inventory, ordered by ascending id. Every
// mutation writes the whole list through to the gateway; a failed write
// rolls the in-memory change back before the error is surfaced.
type RoomService struct {
	mu      sync.Mutex
	gateway storage.Gateway
	rooms   []models.Room
}

func NewRoomService(gw storage.Gateway, rooms []models.Room) *RoomService {
	return &RoomService{gateway: gw, rooms: rooms}
}

// List returns a copy of the inventory in insertion order.
func (s *RoomService) List() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

func (s *RoomService) Get(id uint) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return models.Room{}, notFoundf("room %d not found", id)
	}
	return s.rooms[i], nil
}

// SetOccupant marks the room occupied by guest. Guards double check-in.
func (s *RoomService) SetOccupant(ctx context.Context, id uint, guest string) error {
	guest = strings.TrimSpace(guest)
	if guest == "" || guest == models.Vacant {
		return validationf("guest name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return notFoundf("room %d not found", id)
	}
	if s.rooms[i].Occupied() {
		return conflictf("room %d is currently occupied", s.rooms[i].Number)
	}

	prev := s.rooms[i].Occupant
	s.rooms[i].Occupant = guest
	if err := s.persist(ctx); err != nil {
		s.rooms[i].Occupant = prev
		return err
	}
	return nil
}

// ClearOccupant marks the room vacant. Guards double check-out.
func (s *RoomService) ClearOccupant(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return notFoundf("room %d not found", id)
	}
	if !s.rooms[i].Occupied() {
		return conflictf("room %d is already vacant", s.rooms[i].Number)
	}

	prev := s.rooms[i].Occupant
	s.rooms[i].Occupant = models.Vacant
	if err := s.persist(ctx); err != nil {
		s.rooms[i].Occupant = prev
		return err
	}
	return nil
}

// Update edits type and nightly price. Occupancy is untouched.
func (s *RoomService) Update(ctx context.Context, id uint, roomType string, price float64) (models.Room, error) {
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		return models.Room{}, validationf("room type is required")
	}
	if price <= 0 {
		return models.Room{}, validationf("price must be positive, got %v", price)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return models.Room{}, notFoundf("room %d not found", id)
	}

	prev := s.rooms[i]
	s.rooms[i].Type = roomType
	s.rooms[i].Price = price
	if err := s.persist(ctx); err != nil {
		s.rooms[i] = prev
		return models.Room{}, err
	}
	return s.rooms[i], nil
}

func (s *RoomService) index(id uint) int {
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			return i
		}
	}
	return -1
}

// persist requires s.mu held.
func (s *RoomService) persist(ctx context.Context) error {
	blob, err := json.Marshal(s.rooms)
	if err != nil {
		return persistencef("encode rooms: %v", err)
	}
	if err := s.gateway.Set(ctx, storage.KeyRooms, blob); err != nil {
		return persistencef("save rooms: %v", err)
	}
	return nil
}
