package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/spacebook/spacebook/internal/interfaces/http/middleware"
	"github.com/spacebook/spacebook/internal/interfaces/http/routes"

	_ "github.com/spacebook/spacebook/docs"
)

// SetupRoutes installs the global middleware chain and every route.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.Metrics(c.metrics))

	c.engine.GET("/health", c.healthHandler.HealthCheck)
	c.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})))
	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := c.engine.Group("/api")

	routes.SetupSpaceRoutes(api, &routes.SpaceRouteConfig{
		Handler:              c.spaceHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupReservationRoutes(api, &routes.ReservationRouteConfig{
		Handler:              c.reservationHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		RateLimiter:          c.rateLimiter,
	})

	routes.SetupSettingRoutes(api, &routes.SettingRouteConfig{
		Handler:              c.settingHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupNotificationRoutes(api, &routes.NotificationRouteConfig{
		NotificationHandler:  c.notificationHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}
