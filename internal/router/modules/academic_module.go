package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/campusbridge/student-support-api/internal/interface/http"
)

// AcademicModule serves the public academic listings.
type AcademicModule struct {
	Directory *handlers.DirectoryHandler
}

func NewAcademicModule(d *handlers.DirectoryHandler) *AcademicModule {
	return &AcademicModule{Directory: d}
}

func (m *AcademicModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/academic")
	g.GET("/tutoring", m.Directory.Tutoring)
	g.GET("/resources", m.Directory.AcademicResources)
}
