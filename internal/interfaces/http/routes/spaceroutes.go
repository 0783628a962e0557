package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/spacebook/spacebook/internal/domain/permission/value_objects"
	"github.com/spacebook/spacebook/internal/interfaces/http/handlers"
	"github.com/spacebook/spacebook/internal/interfaces/http/middleware"
)

type SpaceRouteConfig struct {
	Handler              *handlers.SpaceHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupSpaceRoutes(api *gin.RouterGroup, config *SpaceRouteConfig) {
	perm := config.PermissionMiddleware.RequirePermission

	spaces := api.Group("/spaces")
	spaces.Use(config.AuthMiddleware.RequireAuth())
	{
		spaces.GET("", perm(vo.ResourceSpace, vo.ActionList), config.Handler.ListSpaces)
		spaces.POST("", perm(vo.ResourceSpace, vo.ActionCreate), config.Handler.CreateSpace)

		spaces.GET("/:id", perm(vo.ResourceSpace, vo.ActionRead), config.Handler.GetSpace)
		spaces.PATCH("/:id", perm(vo.ResourceSpace, vo.ActionUpdate), config.Handler.UpdateSpace)
		spaces.DELETE("/:id", perm(vo.ResourceSpace, vo.ActionDelete), config.Handler.DeactivateSpace)
	}
}
