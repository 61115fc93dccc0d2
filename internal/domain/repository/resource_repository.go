package repository

import (
	"context"

	"github.com/campusbridge/student-support-api/internal/domain/entity"
)

// ResourcePatch carries the optional fields of a resource update.
type ResourcePatch struct {
	Title       *string
	Description *string
	Contact     *string
	Type        *entity.ResourceType
}

type ResourceRepository interface {
	Create(ctx context.Context, r *entity.Resource) error
	GetByID(ctx context.Context, id string) (*entity.Resource, error)
	List(ctx context.Context) ([]entity.Resource, error)
	Update(ctx context.Context, id string, patch ResourcePatch) (*entity.Resource, error)
	Delete(ctx context.Context, id string) error
}
