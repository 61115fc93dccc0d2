package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/campusbridge/student-support-api/internal/interface/http"
)

// FinancialModule serves the public financial listings.
type FinancialModule struct {
	Directory *handlers.DirectoryHandler
}

func NewFinancialModule(d *handlers.DirectoryHandler) *FinancialModule {
	return &FinancialModule{Directory: d}
}

func (m *FinancialModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/financial")
	g.GET("/scholarships", m.Directory.Scholarships)
	g.GET("/jobs", m.Directory.Jobs)
}
