package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/spacebook/spacebook/internal/shared/authorization"
	"github.com/spacebook/spacebook/internal/shared/constants"
)

// SetPrincipal stores the authenticated caller on the request context.
func SetPrincipal(c *gin.Context, p authorization.Principal) {
	c.Set(constants.ContextKeyUserID, p.UserID)
	c.Set(constants.ContextKeyUserRole, string(p.Role))
}

// GetPrincipal returns the caller set by the auth middleware.
func GetPrincipal(c *gin.Context) (authorization.Principal, bool) {
	rawID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return authorization.Principal{}, false
	}
	id, ok := rawID.(uint)
	if !ok || id == 0 {
		return authorization.Principal{}, false
	}
	return authorization.Principal{
		UserID: id,
		Role:   authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
	}, true
}
