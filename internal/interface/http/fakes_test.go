package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campusbridge/student-support-api/internal/domain/entity"
	"github.com/campusbridge/student-support-api/internal/domain/repository"
)

// In-memory repositories backing handler tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // by id

	getByEmailErr error // when set, GetByEmail fails with it
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		switch {
		case existing.Email == u.Email:
			return &repository.DuplicateError{Field: "email"}
		case existing.StudentID == u.StudentID:
			return &repository.DuplicateError{Field: "studentId"}
		case existing.Phone == u.Phone:
			return &repository.DuplicateError{Field: "phone"}
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getByEmailErr != nil {
		return nil, r.getByEmailErr
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[string]*entity.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*entity.Post{}}
}

func (r *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakePostRepo) List(_ context.Context) ([]entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePostRepo) Update(_ context.Context, id string, patch repository.PostPatch) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[string]*entity.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]*entity.Event{}}
}

func (r *fakeEventRepo) Create(_ context.Context, e *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id string) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.events[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeEventRepo) List(_ context.Context) ([]entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeEventRepo) Update(_ context.Context, id string, patch repository.EventPatch) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	e.UpdatedAt = time.Now()
	cp := *e
	return &cp, nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

type fakeResourceRepo struct {
	mu        sync.Mutex
	resources map[string]*entity.Resource
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{resources: map[string]*entity.Resource{}}
}

// seed inserts an ownerless entry the way migrations do.
func (r *fakeResourceRepo) seed(title string, typ entity.ResourceType) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.NewString()
	r.resources[id] = &entity.Resource{
		ID:        id,
		Title:     title,
		Type:      typ,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	return id
}

func (r *fakeResourceRepo) Create(_ context.Context, res *entity.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res.ID = uuid.NewString()
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	cp := *res
	r.resources[res.ID] = &cp
	return nil
}

func (r *fakeResourceRepo) GetByID(_ context.Context, id string) (*entity.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.resources[id]; ok {
		cp := *res
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeResourceRepo) List(_ context.Context) ([]entity.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Resource, 0, len(r.resources))
	for _, res := range r.resources {
		out = append(out, *res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeResourceRepo) Update(_ context.Context, id string, patch repository.ResourcePatch) (*entity.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.resources[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Title != nil {
		res.Title = *patch.Title
	}
	if patch.Description != nil {
		res.Description = *patch.Description
	}
	if patch.Contact != nil {
		res.Contact = *patch.Contact
	}
	if patch.Type != nil {
		res.Type = *patch.Type
	}
	res.UpdatedAt = time.Now()
	cp := *res
	return &cp, nil
}

func (r *fakeResourceRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resources[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.resources, id)
	return nil
}

var (
	_ repository.UserRepository     = (*fakeUserRepo)(nil)
	_ repository.PostRepository     = (*fakePostRepo)(nil)
	_ repository.EventRepository    = (*fakeEventRepo)(nil)
	_ repository.ResourceRepository = (*fakeResourceRepo)(nil)
)
