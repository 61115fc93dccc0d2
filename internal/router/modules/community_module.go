package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/student-support-api/internal/container"
	handlers "github.com/campusbridge/student-support-api/internal/interface/http"
	"github.com/campusbridge/student-support-api/internal/interface/middleware"
	"github.com/campusbridge/student-support-api/pkg/helpers"
)

// CommunityModule wires posts, events, and volunteer listings.
// Public reads: GET /api/community/{posts,events,volunteer}, posts/search
// Protected writes: POST/PUT/DELETE on posts and events
type CommunityModule struct {
	Handler   *handlers.CommunityHandler
	Directory *handlers.DirectoryHandler
	JWT       *helpers.JWTManager
}

func NewCommunityModule(h *handlers.CommunityHandler, d *handlers.DirectoryHandler, jwt *helpers.JWTManager) *CommunityModule {
	return &CommunityModule{Handler: h, Directory: d, JWT: jwt}
}

func (m *CommunityModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/community")

	g.GET("/posts", m.Handler.ListPosts)
	g.GET("/posts/search", m.Handler.SearchPosts)
	g.GET("/events", m.Handler.ListEvents)
	g.GET("/volunteer", m.Directory.Volunteer)

	auth := g.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/posts", m.Handler.CreatePost)
		auth.PUT("/posts/:id", m.Handler.UpdatePost)
		auth.DELETE("/posts/:id", m.Handler.DeletePost)

		auth.POST("/events", m.Handler.CreateEvent)
		auth.PUT("/events/:id", m.Handler.UpdateEvent)
		auth.DELETE("/events/:id", m.Handler.DeleteEvent)
	}
}
