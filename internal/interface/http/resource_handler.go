package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campusbridge/student-support-api/internal/application"
	"github.com/campusbridge/student-support-api/internal/domain/entity"
	repo "github.com/campusbridge/student-support-api/internal/domain/repository"
	"github.com/campusbridge/student-support-api/pkg/response"
	"github.com/campusbridge/student-support-api/pkg/validation"
)

type ResourceHandler struct {
	Svc    *application.ResourceService
	Logger *logrus.Logger
}

func NewResourceHandler(svc *application.ResourceService, logger *logrus.Logger) *ResourceHandler {
	return &ResourceHandler{Svc: svc, Logger: logger}
}

type resourceView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Contact     string    `json:"contact"`
	Type        string    `json:"type"`
	CreatedBy   string    `json:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toResourceView(r *entity.Resource) resourceView {
	return resourceView{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Contact:     r.Contact,
		Type:        string(r.Type),
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type createResourceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Contact     string `json:"contact" binding:"required"`
	Type        string `json:"type" binding:"required,resourcetype"`
}

type updateResourceRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Contact     *string `json:"contact"`
	Type        *string `json:"type" binding:"omitempty,resourcetype"`
}

// List GET /api/mental-health/resources (public)
func (h *ResourceHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list resources failed")
		response.Error[any](c, http.StatusInternalServerError, "Error fetching resources", nil)
		return
	}
	out := make([]resourceView, 0, len(list))
	for i := range list {
		out = append(out, toResourceView(&list[i]))
	}
	response.Success(c, http.StatusOK, out, "resources", nil)
}

// Create POST /api/mental-health/resources (auth)
func (h *ResourceHandler) Create(c *gin.Context) {
	var req createResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid, _ := requester(c)
	r, err := h.Svc.Create(c.Request.Context(), uid, application.CreateResourceInput{
		Title:       req.Title,
		Description: req.Description,
		Contact:     req.Contact,
		Type:        entity.ResourceType(req.Type),
	})
	if err != nil {
		h.Logger.WithError(err).Error("create resource failed")
		response.Error[any](c, http.StatusInternalServerError, "Error creating resource", nil)
		return
	}
	response.Success(c, http.StatusCreated, toResourceView(r), "resource created", nil)
}

// Update PUT /api/mental-health/resources/:id (auth, owner or admin)
func (h *ResourceHandler) Update(c *gin.Context) {
	var req updateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	var typ *entity.ResourceType
	if req.Type != nil {
		t := entity.ResourceType(*req.Type)
		typ = &t
	}
	uid, role := requester(c)
	r, err := h.Svc.Update(c.Request.Context(), c.Param("id"), uid, role, repo.ResourcePatch{
		Title:       req.Title,
		Description: req.Description,
		Contact:     req.Contact,
		Type:        typ,
	})
	if err != nil {
		writeMutationError(c, h.Logger, err, "resource")
		return
	}
	response.Success(c, http.StatusOK, toResourceView(r), "resource updated", nil)
}

// Delete DELETE /api/mental-health/resources/:id (auth, owner or admin)
func (h *ResourceHandler) Delete(c *gin.Context) {
	uid, role := requester(c)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), uid, role); err != nil {
		writeMutationError(c, h.Logger, err, "resource")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Resource deleted successfully", nil)
}
