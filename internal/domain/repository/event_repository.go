package repository

import (
	"context"
	"time"

	"github.com/campusbridge/student-support-api/internal/domain/entity"
)

// EventPatch carries the optional fields of an event update.
type EventPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	Category    *string
}

type EventRepository interface {
	Create(ctx context.Context, e *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	List(ctx context.Context) ([]entity.Event, error)
	Update(ctx context.Context, id string, patch EventPatch) (*entity.Event, error)
	Delete(ctx context.Context, id string) error
}
