package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campusbridge/student-support-api/internal/application"
	"github.com/campusbridge/student-support-api/pkg/response"
	"github.com/campusbridge/student-support-api/pkg/validation"
)

type ChatHandler struct {
	Svc    *application.ChatService
	Logger *logrus.Logger
}

func NewChatHandler(svc *application.ChatService, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{Svc: svc, Logger: logger}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat POST /api/mental-health/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "message is required", validation.ToDetails(err))
		return
	}
	reply, err := h.Svc.Reply(c.Request.Context(), req.Message)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "Failed to get chat response", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"response": reply}, "chat response", nil)
}
