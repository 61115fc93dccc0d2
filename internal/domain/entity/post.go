package entity

import "time"

// Post is a community discussion post. AuthorID is set once at creation
// and never changes.
type Post struct {
	ID         string
	Title      string
	Content    string
	Category   string
	AuthorID   string
	AuthorName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
