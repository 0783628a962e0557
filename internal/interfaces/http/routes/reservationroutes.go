package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/spacebook/spacebook/internal/domain/permission/value_objects"
	"github.com/spacebook/spacebook/internal/interfaces/http/handlers"
	"github.com/spacebook/spacebook/internal/interfaces/http/middleware"
)

type ReservationRouteConfig struct {
	Handler              *handlers.ReservationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	// RateLimiter is optional; when nil booking writes are not throttled.
	RateLimiter *middleware.RateLimiter
}

func SetupReservationRoutes(api *gin.RouterGroup, config *ReservationRouteConfig) {
	perm := config.PermissionMiddleware.RequirePermission

	throttle := func(c *gin.Context) { c.Next() }
	if config.RateLimiter != nil {
		throttle = config.RateLimiter.Limit()
	}

	reservations := api.Group("/reservations")
	reservations.Use(config.AuthMiddleware.RequireAuth())
	{
		// Named paths go before /:id.
		reservations.GET("", perm(vo.ResourceReservation, vo.ActionList), config.Handler.ListReservations)
		reservations.POST("", perm(vo.ResourceReservation, vo.ActionCreate), throttle, config.Handler.CreateReservation)
		reservations.GET("/mine", perm(vo.ResourceReservation, vo.ActionRead), config.Handler.ListMyReservations)
		reservations.GET("/availability", perm(vo.ResourceReservation, vo.ActionRead), config.Handler.GetAvailability)

		reservations.POST("/:id/approve", perm(vo.ResourceReservation, vo.ActionApprove), config.Handler.ApproveReservation)
		reservations.POST("/:id/reject", perm(vo.ResourceReservation, vo.ActionReject), config.Handler.RejectReservation)
		reservations.POST("/:id/cancel", perm(vo.ResourceReservation, vo.ActionCancel), throttle, config.Handler.CancelReservation)
		reservations.POST("/:id/reactivate", perm(vo.ResourceReservation, vo.ActionReactivate), config.Handler.ReactivateReservation)
		reservations.GET("/:id/history", perm(vo.ResourceReservation, vo.ActionRead), config.Handler.GetHistory)

		reservations.GET("/:id", perm(vo.ResourceReservation, vo.ActionRead), config.Handler.GetReservation)
		reservations.PATCH("/:id", perm(vo.ResourceReservation, vo.ActionUpdate), config.Handler.UpdateReservation)
		reservations.DELETE("/:id", perm(vo.ResourceReservation, vo.ActionDelete), config.Handler.DeactivateReservation)
	}
}
