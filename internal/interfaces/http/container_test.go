package http

import (
	"bytes"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacebook/spacebook/internal/infrastructure/config"
	"github.com/spacebook/spacebook/internal/infrastructure/database"
	"github.com/spacebook/spacebook/internal/infrastructure/migration"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	sharedConfig "github.com/spacebook/spacebook/internal/shared/config"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContainer(t *testing.T) *Container {
	t.Helper()

	gormDB, err := database.Open(&sharedConfig.DatabaseConfig{Driver: "sqlite", Database: ":memory:"})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.NewGormAutoMigrateStrategy(logger.NewNop()).Migrate(gormDB))

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{AllowedOrigins: []string{"*"}},
		Auth:   sharedConfig.AuthConfig{JWT: sharedConfig.JWTConfig{Secret: "test-secret", Issuer: "spacebook"}},
		Booking: sharedConfig.BookingConfig{
			Timezone:    "UTC",
			LockBackend: "memory",
			LockTTL:     time.Second,
			LockWait:    time.Second,
		},
		RateLimit: sharedConfig.RateLimitConfig{Enabled: true, Requests: 2, Window: time.Minute},
	}

	c, err := NewContainer(gormDB, nil, cfg, logger.NewNop())
	require.NoError(t, err)
	c.SetupRoutes()
	return c
}

func (c *Container) tokenFor(t *testing.T, userID uint, role authorization.UserRole) string {
	t.Helper()
	token, err := c.jwtSvc.Generate(userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(c *Container, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	c.Engine().ServeHTTP(w, req)
	return w
}

func TestContainer_HealthAndMetrics(t *testing.T) {
	c := newTestContainer(t)

	w := doRequest(c, stdhttp.MethodGet, "/health", "", nil)
	assert.Equal(t, stdhttp.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = doRequest(c, stdhttp.MethodGet, "/metrics", "", nil)
	require.Equal(t, stdhttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "spacebook_http_request_duration_seconds")
}

func TestContainer_RequiresAuthentication(t *testing.T) {
	c := newTestContainer(t)

	w := doRequest(c, stdhttp.MethodGet, "/api/spaces", "", nil)
	assert.Equal(t, stdhttp.StatusUnauthorized, w.Code)

	w = doRequest(c, stdhttp.MethodGet, "/api/spaces", "not-a-token", nil)
	assert.Equal(t, stdhttp.StatusUnauthorized, w.Code)
}

func TestContainer_SpaceManagementIsAdminOnly(t *testing.T) {
	c := newTestContainer(t)
	userToken := c.tokenFor(t, 1, authorization.RoleUser)
	operatorToken := c.tokenFor(t, 2, authorization.RoleOperator)
	adminToken := c.tokenFor(t, 3, authorization.RoleAdmin)

	body := map[string]any{"name": "Auditorio", "location": "Bloque A", "capacity": 120}

	w := doRequest(c, stdhttp.MethodPost, "/api/spaces", userToken, body)
	assert.Equal(t, stdhttp.StatusForbidden, w.Code)

	w = doRequest(c, stdhttp.MethodPost, "/api/spaces", operatorToken, body)
	assert.Equal(t, stdhttp.StatusForbidden, w.Code)

	w = doRequest(c, stdhttp.MethodPost, "/api/spaces", adminToken, body)
	require.Equal(t, stdhttp.StatusCreated, w.Code, w.Body.String())

	w = doRequest(c, stdhttp.MethodGet, "/api/spaces", userToken, nil)
	require.Equal(t, stdhttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Auditorio")
}

func TestContainer_SettingsAreStaffOnly(t *testing.T) {
	c := newTestContainer(t)

	w := doRequest(c, stdhttp.MethodGet, "/api/settings", c.tokenFor(t, 1, authorization.RoleUser), nil)
	assert.Equal(t, stdhttp.StatusForbidden, w.Code)

	w = doRequest(c, stdhttp.MethodGet, "/api/settings", c.tokenFor(t, 2, authorization.RoleOperator), nil)
	assert.Equal(t, stdhttp.StatusOK, w.Code)
}

func TestContainer_MyReservationsStartEmpty(t *testing.T) {
	c := newTestContainer(t)

	w := doRequest(c, stdhttp.MethodGet, "/api/reservations/mine", c.tokenFor(t, 1, authorization.RoleUser), nil)
	assert.Equal(t, stdhttp.StatusOK, w.Code)
}

func TestContainer_RateLimitsBookingWrites(t *testing.T) {
	c := newTestContainer(t)
	token := c.tokenFor(t, 1, authorization.RoleUser)

	for i := 0; i < 2; i++ {
		w := doRequest(c, stdhttp.MethodPost, "/api/reservations/999/cancel", token, nil)
		assert.Equal(t, stdhttp.StatusNotFound, w.Code)
	}

	w := doRequest(c, stdhttp.MethodPost, "/api/reservations/999/cancel", token, nil)
	assert.Equal(t, stdhttp.StatusTooManyRequests, w.Code)
}
