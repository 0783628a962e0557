package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/spacebook/spacebook/internal/domain/permission/value_objects"
	"github.com/spacebook/spacebook/internal/interfaces/http/handlers"
	"github.com/spacebook/spacebook/internal/interfaces/http/middleware"
)

// SettingRouteConfig holds the configuration for setting routes
type SettingRouteConfig struct {
	Handler              *handlers.SettingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSettingRoutes exposes the configuraciones table to staff.
func SetupSettingRoutes(api *gin.RouterGroup, config *SettingRouteConfig) {
	perm := config.PermissionMiddleware.RequirePermission

	settings := api.Group("/settings")
	settings.Use(config.AuthMiddleware.RequireAuth())
	{
		settings.GET("", perm(vo.ResourceSetting, vo.ActionList), config.Handler.ListSettings)
		settings.PUT("/:key", perm(vo.ResourceSetting, vo.ActionUpdate), config.Handler.UpsertSetting)
	}
}
