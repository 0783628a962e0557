package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/spacebook/spacebook/internal/domain/permission/value_objects"
	"github.com/spacebook/spacebook/internal/interfaces/http/handlers"
	"github.com/spacebook/spacebook/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler  *handlers.NotificationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupNotificationRoutes(api *gin.RouterGroup, config *NotificationRouteConfig) {
	perm := config.PermissionMiddleware.RequirePermission

	notifications := api.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", perm(vo.ResourceNotification, vo.ActionList), config.NotificationHandler.ListNotifications)
		notifications.POST("/:id/read", perm(vo.ResourceNotification, vo.ActionUpdate), config.NotificationHandler.MarkNotificationAsRead)
	}
}
