package models

// Availability filters.
const (
	FilterAll       = "All"
	FilterAvailable = "Available"
	FilterBooked    = "Booked"
)

// CategoryAll disables the room-type filter.
const CategoryAll = "All"

// UIState holds the staff's browsing preferences. Persisted on every change.
type UIState struct {
	Filter   string `json:"filter"`
	Category string `json:"category"`
	Search   string `json:"search"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Dark     bool   `json:"dark"`
}

func DefaultUIState() UIState {
	return UIState{
		Filter:   FilterAll,
		Category: CategoryAll,
		Search:   "",
		Page:     1,
		PageSize: 10,
		Dark:     false,
	}
}

func (u UIState) Valid() bool {
	switch u.Filter {
	case FilterAll, FilterAvailable, FilterBooked:
	default:
		return false
	}
	return u.Category != "" && u.Page >= 1 && u.PageSize >= 1
}
