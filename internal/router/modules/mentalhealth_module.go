package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/student-support-api/internal/container"
	handlers "github.com/campusbridge/student-support-api/internal/interface/http"
	"github.com/campusbridge/student-support-api/internal/interface/middleware"
	"github.com/campusbridge/student-support-api/pkg/helpers"
)

// MentalHealthModule wires the resource directory and the chat proxy.
// Public: GET /api/mental-health/resources, POST /api/mental-health/chat
// Protected: POST/PUT/DELETE on resources
type MentalHealthModule struct {
	Resources *handlers.ResourceHandler
	Chat      *handlers.ChatHandler
	JWT       *helpers.JWTManager
}

func NewMentalHealthModule(r *handlers.ResourceHandler, chat *handlers.ChatHandler, jwt *helpers.JWTManager) *MentalHealthModule {
	return &MentalHealthModule{Resources: r, Chat: chat, JWT: jwt}
}

func (m *MentalHealthModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/mental-health")

	g.GET("/resources", m.Resources.List)

	chatLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath(), nil)
	g.POST("/chat", chatLimiter, m.Chat.Chat)

	auth := g.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/resources", m.Resources.Create)
		auth.PUT("/resources/:id", m.Resources.Update)
		auth.DELETE("/resources/:id", m.Resources.Delete)
	}
}
