package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	notificationApp "github.com/spacebook/spacebook/internal/application/notification"
	notificationUsecases "github.com/spacebook/spacebook/internal/application/notification/usecases"
	reservationApp "github.com/spacebook/spacebook/internal/application/reservation"
	reservationUsecases "github.com/spacebook/spacebook/internal/application/reservation/usecases"
	settingApp "github.com/spacebook/spacebook/internal/application/setting"
	spaceApp "github.com/spacebook/spacebook/internal/application/space"
	"github.com/spacebook/spacebook/internal/infrastructure/auth"
	"github.com/spacebook/spacebook/internal/infrastructure/config"
	"github.com/spacebook/spacebook/internal/infrastructure/email"
	"github.com/spacebook/spacebook/internal/infrastructure/lock"
	"github.com/spacebook/spacebook/internal/infrastructure/metrics"
	"github.com/spacebook/spacebook/internal/infrastructure/permission"
	"github.com/spacebook/spacebook/internal/infrastructure/ratelimit"
	"github.com/spacebook/spacebook/internal/infrastructure/repository"
	"github.com/spacebook/spacebook/internal/interfaces/http/handlers"
	"github.com/spacebook/spacebook/internal/interfaces/http/middleware"
	"github.com/spacebook/spacebook/internal/shared/biztime"
	"github.com/spacebook/spacebook/internal/shared/db"
	"github.com/spacebook/spacebook/internal/shared/logger"
	"github.com/spacebook/spacebook/internal/shared/services/markdown"
)

// Container holds the infrastructure, application services, handlers and
// middleware of the HTTP server. It wires everything together and releases
// shared clients in Shutdown.
type Container struct {
	// Core infrastructure
	engine   *gin.Engine
	db       *gorm.DB
	cfg      *config.Config
	log      logger.Interface
	redis    *redis.Client
	registry *prometheus.Registry
	metrics  *metrics.Collectors
	enforcer *permission.Enforcer
	jwtSvc   *auth.JWTService

	// Application services
	settingService *settingApp.ServiceDDD

	// Handlers
	healthHandler       *handlers.HealthHandler
	spaceHandler        *handlers.SpaceHandler
	reservationHandler  *handlers.ReservationHandler
	settingHandler      *handlers.SettingHandler
	notificationHandler *handlers.NotificationHandler

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter
}

// NewContainer builds every dependency of the HTTP server. A non-nil redis
// client is required when the config selects the redis lock backend.
func NewContainer(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine:   gin.New(),
		db:       gormDB,
		cfg:      cfg,
		log:      log,
		redis:    redisClient,
		registry: prometheus.NewRegistry(),
	}

	c.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	c.metrics = metrics.New(c.registry)

	enforcer, err := permission.NewEnforcer(gormDB, log.Named("permission"))
	if err != nil {
		return nil, fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if _, err := enforcer.SeedDefaults(); err != nil {
		return nil, fmt.Errorf("failed to seed default policies: %w", err)
	}
	c.enforcer = enforcer
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer)

	locker, err := c.newLocker()
	if err != nil {
		return nil, err
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB, log)
	spaceRepo := repository.NewSpaceRepository(gormDB, log)
	reservationRepo := repository.NewReservationRepository(gormDB, log)
	historyRepo := repository.NewHistoryRepository(gormDB, log)
	settingRepo := repository.NewSettingRepository(gormDB, log)
	notificationRepo := repository.NewNotificationRepository(gormDB, log)

	markdownSvc := markdown.NewRenderer()

	var emailSender notificationUsecases.EmailSender
	if cfg.Email.Enabled {
		emailSender = email.NewSMTPEmailService(cfg.Email)
	}
	dispatcher := notificationUsecases.NewDispatcher(notificationRepo, userRepo, emailSender, markdownSvc, log.Named("dispatcher"))

	c.settingService = settingApp.NewServiceDDD(settingRepo, log)
	spaceService := spaceApp.NewServiceDDD(spaceRepo, log)
	notificationService := notificationApp.NewServiceDDD(notificationRepo, markdownSvc, log)
	reservationService := reservationApp.NewServiceDDD(reservationApp.Dependencies{
		Reservations: reservationRepo,
		History:      historyRepo,
		Spaces:       spaceRepo,
		Users:        userRepo,
		Settings:     c.settingService.Provider(),
		Locker:       locker,
		Tx:           db.NewTransactionManager(gormDB),
		Sink:         dispatcher,
		Sanitizer:    markdownSvc,
		Metrics:      c.metrics,
		Location:     biztime.Location(),
	}, log.Named("reservation"))

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	c.healthHandler = handlers.NewHealthHandler(sqlDB, log)
	c.spaceHandler = handlers.NewSpaceHandler(spaceService, log)
	c.reservationHandler = handlers.NewReservationHandler(reservationService, log)
	c.settingHandler = handlers.NewSettingHandler(c.settingService, log)
	c.notificationHandler = handlers.NewNotificationHandler(notificationService, log)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, log)
	if cfg.RateLimit.Enabled {
		c.rateLimiter = middleware.NewRateLimiter(c.newLimiter(), log)
	}

	return c, nil
}

func (c *Container) newLocker() (reservationUsecases.SpaceLocker, error) {
	switch c.cfg.Booking.LockBackend {
	case "redis":
		if c.redis == nil {
			return nil, fmt.Errorf("redis lock backend selected but no redis client was provided")
		}
		return lock.NewRedisLocker(c.redis, c.cfg.Booking.LockTTL, c.cfg.Booking.LockWait, c.log.Named("lock")), nil
	default:
		return lock.NewMemoryLocker(c.cfg.Booking.LockWait), nil
	}
}

// newLimiter shares counters through redis when available so that every
// instance enforces the same window.
func (c *Container) newLimiter() ratelimit.Limiter {
	if c.redis != nil {
		return ratelimit.NewRedisLimiter(c.redis, c.cfg.RateLimit.Requests, c.cfg.RateLimit.Window)
	}
	return ratelimit.NewMemoryLimiter(c.cfg.RateLimit.Requests, c.cfg.RateLimit.Window)
}

// Engine returns the gin engine. Call SetupRoutes first.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases shared clients. The database is closed by its owner.
func (c *Container) Shutdown() {
	if c.redis == nil {
		return
	}
	done := make(chan struct{})
	go func() {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		c.log.Warnw("timed out closing redis client")
	}
}
