package repository

import (
	"context"

	"github.com/campusbridge/student-support-api/internal/domain/entity"
)

// PostPatch carries the optional fields of a post update. Nil means keep
// the stored value; the whole patch is applied in one statement.
type PostPatch struct {
	Title    *string
	Content  *string
	Category *string
}

type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context) ([]entity.Post, error)
	Update(ctx context.Context, id string, patch PostPatch) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
}
