package entity

import "time"

// Event is a community event. CreatedBy is set once at creation and never
// changes.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	Location    string
	Category    string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
