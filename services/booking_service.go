package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"frontdesk-backend/models"
	"frontdesk-backend/storage"
)

// BookingService owns the booking history, most-recent-created first.
// Same write-through and rollback discipline as the room inventory.
type BookingService struct {
	mu       sync.Mutex
	gateway  storage.Gateway
	bookings []models.Booking
	nextID   uint
}

func NewBookingService(gw storage.Gateway, bookings []models.Booking) *BookingService {
	var maxID uint
	for _, b := range bookings {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	return &BookingService{gateway: gw, bookings: bookings, nextID: maxID + 1}
}

// List returns a copy of the history, newest first.
func (s *BookingService) List() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *BookingService) Get(id uint) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return models.Booking{}, notFoundf("booking %d not found", id)
	}
	return s.bookings[i], nil
}

// Create assigns id, reference code and creation time, prepends the
// booking to the history and persists it.
func (s *BookingService) Create(ctx context.Context, draft models.Booking) (models.Booking, error) {
	ref, err := gonanoid.New(8)
	if err != nil {
		return models.Booking{}, persistencef("generate booking ref: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = s.nextID
	draft.Ref = ref
	draft.CreatedAt = time.Now()
	draft.Active = true

	s.bookings = append([]models.Booking{draft}, s.bookings...)
	if err := s.persist(ctx); err != nil {
		s.bookings = s.bookings[1:]
		return models.Booking{}, err
	}
	s.nextID++
	return draft, nil
}

// CloseActiveForRoom flips Active off on the room's active booking. The
// caller must have verified the room was occupied; no active booking here
// means the two collections drifted apart, so it is reported, not ignored.
func (s *BookingService) CloseActiveForRoom(ctx context.Context, roomID uint) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].RoomID == roomID && s.bookings[i].Active {
			s.bookings[i].Active = false
			if err := s.persist(ctx); err != nil {
				s.bookings[i].Active = true
				return models.Booking{}, err
			}
			return s.bookings[i], nil
		}
	}
	return models.Booking{}, notFoundf("no active booking for room %d", roomID)
}

// Delete removes a booking from history permanently. Room occupancy is
// never touched here.
func (s *BookingService) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return notFoundf("booking %d not found", id)
	}

	removed := s.bookings[i]
	s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
	if err := s.persist(ctx); err != nil {
		rest := append([]models.Booking{removed}, s.bookings[i:]...)
		s.bookings = append(s.bookings[:i], rest...)
		return err
	}
	return nil
}

func (s *BookingService) index(id uint) int {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

// persist requires s.mu held.
func (s *BookingService) persist(ctx context.Context) error {
	blob, err := json.Marshal(s.bookings)
	if err != nil {
		return persistencef("encode bookings: %v", err)
	}
	if err := s.gateway.Set(ctx, storage.KeyBookings, blob); err != nil {
		return persistencef("save bookings: %v", err)
	}
	return nil
}
