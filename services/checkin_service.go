package services

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"frontdesk-backend/models"
)

// CheckInInput is the staff-entered check-in form. Extras are entered as a
// per-night figure; the bill carries the stay total.
type CheckInInput struct {
	GuestName      string  `json:"guestName"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	CheckIn        string  `json:"checkin"`
	CheckOut       string  `json:"checkout"`
	ExtrasPerNight float64 `json:"extrasPerNight"`
}

// Quote is a staged billing preview for one room. It has no persisted side
// effect and can be abandoned at any time.
type Quote struct {
	RoomID     uint   `json:"roomId"`
	RoomNumber int    `json:"roomNumber"`
	RoomType   string `json:"roomType"`
	CheckIn    string `json:"checkin"`
	CheckOut   string `json:"checkout"`
	Bill
}

// CheckinService drives the room state machine: Available --CheckIn-->
// Occupied, Occupied --CheckOut--> Available, Edit keeps occupancy. The
// last quote per room is cached so a confirmed check-in stores exactly the
// figures the staff reviewed instead of recomputing them.
type CheckinService struct {
	billing  *BillingService
	rooms    *RoomService
	bookings *BookingService

	mu          sync.Mutex
	pending     map[uint]Quote
	lastReceipt *models.Booking
}

func NewCheckinService(billing *BillingService, rooms *RoomService, bookings *BookingService) *CheckinService {
	return &CheckinService{
		billing:  billing,
		rooms:    rooms,
		bookings: bookings,
		pending:  map[uint]Quote{},
	}
}

// Preview validates the stay dates and returns the billing breakdown for
// staff review. Guest identity is not required yet.
func (s *CheckinService) Preview(roomID uint, in CheckInInput) (Quote, error) {
	room, err := s.rooms.Get(roomID)
	if err != nil {
		return Quote{}, err
	}
	if room.Occupied() {
		return Quote{}, conflictf("room %d is currently occupied", room.Number)
	}

	nights, err := nightsBetween(in.CheckIn, in.CheckOut)
	if err != nil {
		return Quote{}, err
	}

	bill, err := s.billing.Compute(rateFor(room), nights, in.ExtrasPerNight)
	if err != nil {
		return Quote{}, err
	}

	quote := Quote{
		RoomID:     room.ID,
		RoomNumber: room.Number,
		RoomType:   room.Type,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		Bill:       bill,
	}

	s.mu.Lock()
	s.pending[roomID] = quote
	s.mu.Unlock()

	return quote, nil
}

// CheckIn confirms the stay: validate, bill, mark the room occupied, then
// record the booking. The room mutation persists first so the two
// collections stay consistent if the second write fails; a failed booking
// write vacates the room again before the error is surfaced.
func (s *CheckinService) CheckIn(ctx context.Context, roomID uint, in CheckInInput) (models.Booking, error) {
	guest := strings.TrimSpace(in.GuestName)
	if guest == "" {
		return models.Booking{}, validationf("guest name is required")
	}

	room, err := s.rooms.Get(roomID)
	if err != nil {
		return models.Booking{}, err
	}
	if room.Occupied() {
		return models.Booking{}, conflictf("room %d is currently occupied", room.Number)
	}

	nights, err := nightsBetween(in.CheckIn, in.CheckOut)
	if err != nil {
		return models.Booking{}, err
	}

	rate := rateFor(room)
	bill, ok := s.takePending(roomID, in, rate, nights)
	if !ok {
		bill, err = s.billing.Compute(rate, nights, in.ExtrasPerNight)
		if err != nil {
			return models.Booking{}, err
		}
	}

	if err := s.rooms.SetOccupant(ctx, roomID, guest); err != nil {
		return models.Booking{}, err
	}

	draft := models.Booking{
		GuestName:  guest,
		Phone:      strings.TrimSpace(in.Phone),
		Email:      strings.TrimSpace(in.Email),
		RoomID:     room.ID,
		RoomNumber: room.Number,
		RoomType:   room.Type,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		Nights:     bill.Nights,
		Rate:       bill.Rate,
		Extras:     bill.Extras,
		Tax:        bill.Tax,
		Total:      bill.Total,
	}

	booking, err := s.bookings.Create(ctx, draft)
	if err != nil {
		if clearErr := s.rooms.ClearOccupant(ctx, roomID); clearErr != nil {
			return models.Booking{}, persistencef("booking not recorded and room %d left occupied: %v", room.Number, err)
		}
		return models.Booking{}, err
	}

	s.mu.Lock()
	s.lastReceipt = &booking
	delete(s.pending, roomID)
	s.mu.Unlock()

	return booking, nil
}

// CheckOut vacates the room and closes its active booking. The booking is
// never deleted; it stays in history with its billing fields unchanged.
func (s *CheckinService) CheckOut(ctx context.Context, roomID uint) (models.Booking, error) {
	room, err := s.rooms.Get(roomID)
	if err != nil {
		return models.Booking{}, err
	}
	if !room.Occupied() {
		return models.Booking{}, conflictf("room %d is already vacant", room.Number)
	}

	if err := s.rooms.ClearOccupant(ctx, roomID); err != nil {
		return models.Booking{}, err
	}
	return s.bookings.CloseActiveForRoom(ctx, roomID)
}

// EditRoom updates type and price without touching occupancy.
func (s *CheckinService) EditRoom(ctx context.Context, roomID uint, roomType string, price float64) (models.Room, error) {
	return s.rooms.Update(ctx, roomID, roomType, price)
}

// LastReceipt returns the booking recorded by the most recent check-in of
// this run, or nil when none happened yet.
func (s *CheckinService) LastReceipt() *models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastReceipt == nil {
		return nil
	}
	receipt := *s.lastReceipt
	return &receipt
}

// takePending returns the cached quote for the room when its inputs still
// match the confirmation request. A stale quote is dropped.
func (s *CheckinService) takePending(roomID uint, in CheckInInput, rate float64, nights int) (Bill, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quote, ok := s.pending[roomID]
	if !ok {
		return Bill{}, false
	}
	if quote.CheckIn != in.CheckIn || quote.CheckOut != in.CheckOut ||
		quote.Rate != rate || quote.Nights != nights ||
		quote.Extras != in.ExtrasPerNight*float64(nights) {
		delete(s.pending, roomID)
		return Bill{}, false
	}
	return quote.Bill, true
}

// rateFor falls back to the type's standard rate when the stored price is
// unusable, and to the Standard rate when the type is unknown.
func rateFor(room models.Room) float64 {
	if room.Price > 0 {
		return room.Price
	}
	if rate, ok := models.DefaultPrices[room.Type]; ok {
		return rate
	}
	return models.DefaultPrices["Standard"]
}

// nightsBetween parses the two calendar dates and returns the whole-day
// difference. Checkout must be strictly after check-in.
func nightsBetween(checkin, checkout string) (int, error) {
	if checkin == "" || checkout == "" {
		return 0, validationf("check-in and check-out dates are required")
	}
	ci, err := time.Parse(models.DateLayout, checkin)
	if err != nil {
		return 0, validationf("invalid check-in date %q", checkin)
	}
	co, err := time.Parse(models.DateLayout, checkout)
	if err != nil {
		return 0, validationf("invalid check-out date %q", checkout)
	}
	if !co.After(ci) {
		return 0, validationf("checkout must be after check-in")
	}

	nights := int(math.Round(co.Sub(ci).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights, nil
}
