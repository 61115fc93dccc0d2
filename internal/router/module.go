package router

import "github.com/gin-gonic/gin"

// Module is a route family (auth, community, mental health, ...) that
// attaches its endpoints to the shared API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
