package middleware

import (
	"errors"
	"strings"

	"codedex_backend/internal/config"
	"codedex_backend/internal/model"
	"codedex_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func extractToken(c *gin.Context) string {
	// Browser clients carry the session in the cookie; API clients may use a
	// bearer header instead.
	if token, err := c.Cookie(util.SessionCookieName); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// AuthMiddleware rejects requests without a valid session and exposes the
// decoded claims to downstream handlers under the "user" context key.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			util.Unauthorized(c, "Not authenticated: no session token provided")
			c.Abort()
			return
		}

		claims, err := util.ParseSessionToken(tokenString, cfg.JWTSecret())
		if err != nil {
			if errors.Is(err, util.ErrTokenExpired) {
				util.Unauthorized(c, "Token expired")
			} else {
				util.Unauthorized(c, "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// TryAuthMiddleware attaches claims when a valid session is present but never
// aborts; public pages use it to personalize responses for signed-in users.
func TryAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractToken(c); tokenString != "" {
			if claims, err := util.ParseSessionToken(tokenString, cfg.JWTSecret()); err == nil {
				c.Set("user", claims)
			}
		}
		c.Next()
	}
}

// RoleChecker resolves the current role of a user from the store.
type RoleChecker interface {
	GetRole(userID string) (model.UserRole, error)
}

// RoleMiddleware gates a route to the given roles. When auth.recheck_admin_role
// is enabled the role is also re-read from the store, so a stale token does not
// keep admin access after a demotion. The flag is read per request so a config
// reload takes effect immediately.
func RoleMiddleware(checker RoleChecker, cfg *config.Config, roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !roleAllowed(user.Role, roles) {
			util.Forbidden(c)
			c.Abort()
			return
		}

		if cfg.RecheckAdminRole() && checker != nil {
			storedRole, err := checker.GetRole(user.UserID)
			if err != nil || !roleAllowed(storedRole, roles) {
				util.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

func roleAllowed(role model.UserRole, allowed []model.UserRole) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
