package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/campusbridge/student-support-api/internal/domain/entity"
	repo "github.com/campusbridge/student-support-api/internal/domain/repository"
	"github.com/campusbridge/student-support-api/pkg/helpers"
)

const (
	resourceListKey = "mh:resources"
	resourceListTTL = 5 * time.Minute
)

// ResourceService implements mental-health resource CRUD with the shared
// ownership rule. The public listing is cached in Redis.
type ResourceService struct {
	Resources repo.ResourceRepository
	Redis     *redis.Client
	Logger    *logrus.Logger
}

func NewResourceService(resources repo.ResourceRepository, rdb *redis.Client, logger *logrus.Logger) *ResourceService {
	return &ResourceService{Resources: resources, Redis: rdb, Logger: logger}
}

type CreateResourceInput struct {
	Title       string
	Description string
	Contact     string
	Type        entity.ResourceType
}

func (s *ResourceService) Create(ctx context.Context, creatorID string, in CreateResourceInput) (*entity.Resource, error) {
	r := &entity.Resource{
		Title:       in.Title,
		Description: in.Description,
		Contact:     in.Contact,
		Type:        in.Type,
		CreatedBy:   creatorID,
	}
	if err := s.Resources.Create(ctx, r); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return r, nil
}

func (s *ResourceService) List(ctx context.Context) ([]entity.Resource, error) {
	if s.Redis != nil {
		var cached []entity.Resource
		ok, err := helpers.RedisGetJSON(ctx, s.Redis, resourceListKey, &cached)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("read resource list cache failed")
		}
		if ok {
			return cached, nil
		}
	}
	list, err := s.Resources.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, resourceListKey, list, resourceListTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("cache resource list failed")
		}
	}
	return list, nil
}

func (s *ResourceService) Update(ctx context.Context, id, requesterID string, role entity.Role, patch repo.ResourcePatch) (*entity.Resource, error) {
	existing, err := s.Resources.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.CanMutate(existing.CreatedBy, requesterID, role) {
		return nil, ErrNotAuthorized
	}
	r, err := s.Resources.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return r, nil
}

func (s *ResourceService) Delete(ctx context.Context, id, requesterID string, role entity.Role) error {
	existing, err := s.Resources.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !entity.CanMutate(existing.CreatedBy, requesterID, role) {
		return ErrNotAuthorized
	}
	if err := s.Resources.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ResourceService) invalidate(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, resourceListKey); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("invalidate resource list cache failed")
	}
}
