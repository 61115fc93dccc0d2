package entity

import "time"

// ResourceType classifies a mental-health resource entry.
type ResourceType string

const (
	ResourceHotline     ResourceType = "hotline"
	ResourceCounseling  ResourceType = "counseling"
	ResourcePeerSupport ResourceType = "peer-support"
	ResourceWellness    ResourceType = "wellness"
)

func (t ResourceType) Valid() bool {
	switch t {
	case ResourceHotline, ResourceCounseling, ResourcePeerSupport, ResourceWellness:
		return true
	}
	return false
}

// Resource is a mental-health support entry. Seeded entries carry no owner
// and can only be changed by admins.
type Resource struct {
	ID          string
	Title       string
	Description string
	Contact     string
	Type        ResourceType
	CreatedBy   string // empty for seeded entries
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
