package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacebook/spacebook/internal/shared/authorization"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "spacebook")

	token, err := svc.Generate(42, authorization.RoleOperator, time.Hour)
	require.NoError(t, err)

	p, err := svc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), p.UserID)
	assert.Equal(t, authorization.RoleOperator, p.Role)
	assert.True(t, p.IsStaff())
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("test-secret", "spacebook")

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("another-secret", "spacebook")
		token, err := other.Generate(1, authorization.RoleUser, time.Hour)
		require.NoError(t, err)

		_, err = svc.Authenticate(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := svc.Generate(1, authorization.RoleUser, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Authenticate(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewJWTService("test-secret", "someone-else")
		token, err := other.Generate(1, authorization.RoleUser, time.Hour)
		require.NoError(t, err)

		_, err = svc.Authenticate(token)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, err := svc.Generate(1, authorization.UserRole("root"), time.Hour)
		require.NoError(t, err)

		_, err = svc.Authenticate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("zero subject", func(t *testing.T) {
		token, err := svc.Generate(0, authorization.RoleUser, time.Hour)
		require.NoError(t, err)

		_, err = svc.Authenticate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Authenticate("not-a-token")
		assert.Error(t, err)
	})
}
