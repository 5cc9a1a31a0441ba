package services

import (
	"strconv"
	"strings"

	"frontdesk-backend/models"
)

// RoomPage is one page of the filtered inventory view.
type RoomPage struct {
	Items      []models.Room `json:"items"`
	TotalCount int           `json:"totalCount"`
	PageCount  int           `json:"pageCount"`
	Page       int           `json:"page"`
}

// RoomStats are the dashboard counters over the whole inventory.
type RoomStats struct {
	Total     int `json:"total"`
	Booked    int `json:"booked"`
	Available int `json:"available"`
}

// QueryService derives the visible room page from the inventory and the
// current UI state. Read-only: it never mutates either input.
type QueryService struct{}

// View filters by category, then availability, then room-number search,
// and slices out the requested page. A page beyond the shrunken result set
// is clamped to the last page, so filtering can never strand the staff on
// an empty page.
func (QueryService) View(rooms []models.Room, ui models.UIState) RoomPage {
	filtered := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if ui.Category != models.CategoryAll && r.Type != ui.Category {
			continue
		}
		if ui.Filter == models.FilterAvailable && r.Occupied() {
			continue
		}
		if ui.Filter == models.FilterBooked && !r.Occupied() {
			continue
		}
		if ui.Search != "" && !strings.Contains(strconv.Itoa(r.Number), ui.Search) {
			continue
		}
		filtered = append(filtered, r)
	}

	pageSize := ui.PageSize
	if pageSize < 1 {
		pageSize = models.DefaultUIState().PageSize
	}

	pageCount := (len(filtered) + pageSize - 1) / pageSize
	if pageCount < 1 {
		pageCount = 1
	}

	page := ui.Page
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return RoomPage{
		Items:      filtered[start:end],
		TotalCount: len(filtered),
		PageCount:  pageCount,
		Page:       page,
	}
}

func (QueryService) Stats(rooms []models.Room) RoomStats {
	stats := RoomStats{Total: len(rooms)}
	for _, r := range rooms {
		if r.Occupied() {
			stats.Booked++
		}
	}
	stats.Available = stats.Total - stats.Booked
	return stats
}
