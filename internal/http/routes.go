// Package http provides the HTTP surface of the cart service: the mock cart
// API, the catalog proxy routes and the infrastructure endpoints.
package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines a set of routes registered under the API group.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}
