package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/campusbridge/student-support-api/internal/domain/entity"
	repo "github.com/campusbridge/student-support-api/internal/domain/repository"
)

// CommunityService implements posts and events CRUD with the shared
// ownership rule, plus full-text post search via Elasticsearch.
type CommunityService struct {
	Posts        repo.PostRepository
	Events       repo.EventRepository
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESPostsIndex string
}

func NewCommunityService(posts repo.PostRepository, events repo.EventRepository, logger *logrus.Logger, es *elasticsearch.Client, esPostsIndex string) *CommunityService {
	return &CommunityService{Posts: posts, Events: events, Logger: logger, ES: es, ESPostsIndex: esPostsIndex}
}

type CreatePostInput struct {
	Title    string
	Content  string
	Category string
}

func (s *CommunityService) CreatePost(ctx context.Context, authorID string, in CreatePostInput) (*entity.Post, error) {
	p := &entity.Post{
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		AuthorID: authorID,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	_ = s.indexPost(ctx, p)
	return p, nil
}

func (s *CommunityService) ListPosts(ctx context.Context) ([]entity.Post, error) {
	return s.Posts.List(ctx)
}

// UpdatePost applies the patch after the 404-before-403 check order: a
// missing post is reported as not found regardless of the requester.
func (s *CommunityService) UpdatePost(ctx context.Context, id, requesterID string, role entity.Role, patch repo.PostPatch) (*entity.Post, error) {
	existing, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.CanMutate(existing.AuthorID, requesterID, role) {
		return nil, ErrNotAuthorized
	}
	p, err := s.Posts.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	p.AuthorName = existing.AuthorName
	_ = s.indexPost(ctx, p)
	return p, nil
}

func (s *CommunityService) DeletePost(ctx context.Context, id, requesterID string, role entity.Role) error {
	existing, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !entity.CanMutate(existing.AuthorID, requesterID, role) {
		return ErrNotAuthorized
	}
	if err := s.Posts.Delete(ctx, id); err != nil {
		return err
	}
	s.removePostFromIndex(ctx, id)
	return nil
}

type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	Category    string
}

func (s *CommunityService) CreateEvent(ctx context.Context, creatorID string, in CreateEventInput) (*entity.Event, error) {
	e := &entity.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		Category:    in.Category,
		CreatedBy:   creatorID,
	}
	if err := s.Events.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *CommunityService) ListEvents(ctx context.Context) ([]entity.Event, error) {
	return s.Events.List(ctx)
}

func (s *CommunityService) UpdateEvent(ctx context.Context, id, requesterID string, role entity.Role, patch repo.EventPatch) (*entity.Event, error) {
	existing, err := s.Events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.CanMutate(existing.CreatedBy, requesterID, role) {
		return nil, ErrNotAuthorized
	}
	return s.Events.Update(ctx, id, patch)
}

func (s *CommunityService) DeleteEvent(ctx context.Context, id, requesterID string, role entity.Role) error {
	existing, err := s.Events.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !entity.CanMutate(existing.CreatedBy, requesterID, role) {
		return ErrNotAuthorized
	}
	return s.Events.Delete(ctx, id)
}

func (s *CommunityService) indexPost(ctx context.Context, p *entity.Post) error {
	if s.ES == nil || s.ESPostsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          p.ID,
		"title":       p.Title,
		"content":     p.Content,
		"category":    p.Category,
		"author_id":   p.AuthorID,
		"author_name": p.AuthorName,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPostsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
	return nil
}

func (s *CommunityService) removePostFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	req := esapi.DeleteRequest{Index: s.ESPostsIndex, DocumentID: id}
	if res, err := req.Do(c, s.ES); err == nil {
		_ = res.Body.Close()
	}
}

// SearchPosts performs a multi_match search on title and content.
func (s *CommunityService) SearchPosts(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "content"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESPostsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
