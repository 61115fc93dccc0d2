package repository

import (
	"context"

	"github.com/campusbridge/student-support-api/internal/domain/entity"
)

// UserRepository defines user persistence. Create returns a DuplicateError
// when a uniqueness constraint is violated.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
