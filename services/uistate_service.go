package services

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"sync"

	"frontdesk-backend/models"
	"frontdesk-backend/storage"
)

var nonDigits = regexp.MustCompile(`\D`)

// UIStateService holds the staff's browsing preferences and persists them
// on every change. Filter, category and search changes reset the page to 1.
type UIStateService struct {
	mu      sync.Mutex
	gateway storage.Gateway
	state   models.UIState
}

func NewUIStateService(gw storage.Gateway, state models.UIState) *UIStateService {
	return &UIStateService{gateway: gw, state: state}
}

func (s *UIStateService) Snapshot() models.UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *UIStateService) SetFilter(ctx context.Context, filter string) error {
	switch filter {
	case models.FilterAll, models.FilterAvailable, models.FilterBooked:
	default:
		return validationf("unknown filter %q", filter)
	}
	return s.apply(ctx, func(u *models.UIState) {
		u.Filter = filter
		u.Page = 1
	})
}

func (s *UIStateService) SetCategory(ctx context.Context, category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return validationf("category is required")
	}
	return s.apply(ctx, func(u *models.UIState) {
		u.Category = category
		u.Page = 1
	})
}

// SetSearch strips non-digit characters before storing, so the query
// engine only ever sees digit substrings.
func (s *UIStateService) SetSearch(ctx context.Context, search string) error {
	cleaned := nonDigits.ReplaceAllString(search, "")
	return s.apply(ctx, func(u *models.UIState) {
		u.Search = cleaned
		u.Page = 1
	})
}

func (s *UIStateService) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		return validationf("page must be at least 1, got %d", page)
	}
	return s.apply(ctx, func(u *models.UIState) {
		u.Page = page
	})
}

func (s *UIStateService) SetPageSize(ctx context.Context, size int) error {
	if size < 1 {
		return validationf("page size must be at least 1, got %d", size)
	}
	return s.apply(ctx, func(u *models.UIState) {
		u.PageSize = size
		u.Page = 1
	})
}

func (s *UIStateService) SetDark(ctx context.Context, dark bool) error {
	return s.apply(ctx, func(u *models.UIState) {
		u.Dark = dark
	})
}

func (s *UIStateService) apply(ctx context.Context, mutate func(*models.UIState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	mutate(&s.state)

	blob, err := json.Marshal(s.state)
	if err != nil {
		s.state = prev
		return persistencef("encode ui state: %v", err)
	}
	if err := s.gateway.Set(ctx, storage.KeyUI, blob); err != nil {
		s.state = prev
		return persistencef("save ui state: %v", err)
	}
	return nil
}
