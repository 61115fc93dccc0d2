package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campusbridge/student-support-api/internal/application"
	"github.com/campusbridge/student-support-api/internal/domain/entity"
	repo "github.com/campusbridge/student-support-api/internal/domain/repository"
	"github.com/campusbridge/student-support-api/internal/interface/middleware"
	"github.com/campusbridge/student-support-api/pkg/response"
	"github.com/campusbridge/student-support-api/pkg/validation"
)

type CommunityHandler struct {
	Svc    *application.CommunityService
	Logger *logrus.Logger
}

func NewCommunityHandler(svc *application.CommunityService, logger *logrus.Logger) *CommunityHandler {
	return &CommunityHandler{Svc: svc, Logger: logger}
}

func requester(c *gin.Context) (string, entity.Role) {
	return c.GetString(middleware.CtxUserIDKey), entity.ParseRole(c.GetString(middleware.CtxUserRoleKey))
}

type postView struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	Author     string    `json:"author"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toPostView(p *entity.Post) postView {
	return postView{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		Category:   p.Category,
		Author:     p.AuthorID,
		AuthorName: p.AuthorName,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

type eventView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toEventView(e *entity.Event) eventView {
	return eventView{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Category:    e.Category,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type createPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
}

type updatePostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

type createEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Category    string    `json:"category" binding:"required"`
}

type updateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	Category    *string    `json:"category"`
}

// ListPosts GET /api/community/posts (public)
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	posts, err := h.Svc.ListPosts(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list posts failed")
		response.Error[any](c, http.StatusInternalServerError, "Error fetching posts", nil)
		return
	}
	out := make([]postView, 0, len(posts))
	for i := range posts {
		out = append(out, toPostView(&posts[i]))
	}
	response.Success(c, http.StatusOK, out, "posts", nil)
}

// CreatePost POST /api/community/posts (auth)
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid, _ := requester(c)
	p, err := h.Svc.CreatePost(c.Request.Context(), uid, application.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create post failed")
		response.Error[any](c, http.StatusInternalServerError, "Error creating post", nil)
		return
	}
	response.Success(c, http.StatusCreated, toPostView(p), "post created", nil)
}

// UpdatePost PUT /api/community/posts/:id (auth, owner or admin)
func (h *CommunityHandler) UpdatePost(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid, role := requester(c)
	p, err := h.Svc.UpdatePost(c.Request.Context(), c.Param("id"), uid, role, repo.PostPatch{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		writeMutationError(c, h.Logger, err, "post")
		return
	}
	response.Success(c, http.StatusOK, toPostView(p), "post updated", nil)
}

// DeletePost DELETE /api/community/posts/:id (auth, owner or admin)
func (h *CommunityHandler) DeletePost(c *gin.Context) {
	uid, role := requester(c)
	if err := h.Svc.DeletePost(c.Request.Context(), c.Param("id"), uid, role); err != nil {
		writeMutationError(c, h.Logger, err, "post")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Post deleted successfully", nil)
}

// SearchPosts GET /api/community/posts/search?q=
func (h *CommunityHandler) SearchPosts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	hits, err := h.Svc.SearchPosts(c.Request.Context(), q, 20)
	if err != nil {
		h.Logger.WithError(err).Error("search posts failed")
		response.Error[any](c, http.StatusInternalServerError, "Error searching posts", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}

// ListEvents GET /api/community/events (public)
func (h *CommunityHandler) ListEvents(c *gin.Context) {
	events, err := h.Svc.ListEvents(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list events failed")
		response.Error[any](c, http.StatusInternalServerError, "Error fetching events", nil)
		return
	}
	out := make([]eventView, 0, len(events))
	for i := range events {
		out = append(out, toEventView(&events[i]))
	}
	response.Success(c, http.StatusOK, out, "events", nil)
}

// CreateEvent POST /api/community/events (auth)
func (h *CommunityHandler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid, _ := requester(c)
	e, err := h.Svc.CreateEvent(c.Request.Context(), uid, application.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Category:    req.Category,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create event failed")
		response.Error[any](c, http.StatusInternalServerError, "Error creating event", nil)
		return
	}
	response.Success(c, http.StatusCreated, toEventView(e), "event created", nil)
}

// UpdateEvent PUT /api/community/events/:id (auth, owner or admin)
func (h *CommunityHandler) UpdateEvent(c *gin.Context) {
	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid, role := requester(c)
	e, err := h.Svc.UpdateEvent(c.Request.Context(), c.Param("id"), uid, role, repo.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Category:    req.Category,
	})
	if err != nil {
		writeMutationError(c, h.Logger, err, "event")
		return
	}
	response.Success(c, http.StatusOK, toEventView(e), "event updated", nil)
}

// DeleteEvent DELETE /api/community/events/:id (auth, owner or admin)
func (h *CommunityHandler) DeleteEvent(c *gin.Context) {
	uid, role := requester(c)
	if err := h.Svc.DeleteEvent(c.Request.Context(), c.Param("id"), uid, role); err != nil {
		writeMutationError(c, h.Logger, err, "event")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Event deleted successfully", nil)
}
