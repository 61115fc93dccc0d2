package application

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/campusbridge/student-support-api/internal/domain/entity"
	repo "github.com/campusbridge/student-support-api/internal/domain/repository"
)

type staticResourceRepo struct {
	list []entity.Resource
}

func (r *staticResourceRepo) Create(context.Context, *entity.Resource) error { return nil }
func (r *staticResourceRepo) GetByID(context.Context, string) (*entity.Resource, error) {
	return nil, repo.ErrNotFound
}
func (r *staticResourceRepo) List(context.Context) ([]entity.Resource, error) {
	return r.list, nil
}
func (r *staticResourceRepo) Update(context.Context, string, repo.ResourcePatch) (*entity.Resource, error) {
	return nil, repo.ErrNotFound
}
func (r *staticResourceRepo) Delete(context.Context, string) error { return repo.ErrNotFound }

func TestListSurvivesUnreachableCacheAndLogsIt(t *testing.T) {
	logger, hook := test.NewNullLogger()

	// nothing listens here, every command fails fast
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer func() { _ = rdb.Close() }()

	store := &staticResourceRepo{list: []entity.Resource{
		{ID: "r1", Title: "Counseling Center", Type: entity.ResourceCounseling},
	}}
	svc := NewResourceService(store, rdb, logger)

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != "r1" {
		t.Fatalf("unexpected list: %+v", list)
	}

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "read resource list cache failed" {
			warned = true
		}
	}
	if !warned {
		t.Fatal("cache read failure was not logged")
	}
}
