package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/config"
)

// userContextKey is where the identity middleware stores the resolved user.
const userContextKey = "user_id"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// identity resolves the requesting user and stores it on the context.
// With authentication disabled every request runs as the configured dev
// user; otherwise identity comes from the auth proxy headers, and requests
// without one are rejected.
func identity(auth *config.AuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if !auth.Enabled {
				c.Set(userContextKey, auth.DevUserID)
				return next(c)
			}

			user := extractIdentity(c)
			if user == "" {
				return c.JSON(http.StatusUnauthorized,
					map[string]string{"detail": "authentication required"})
			}
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// extractIdentity reads the identity populated by the auth proxy.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email (oauth2-proxy) >
// X-Remote-User (kube-rbac-proxy).
func extractIdentity(c *echo.Context) string {
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request().Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	return c.Request().Header.Get("X-Remote-User")
}

// currentUser returns the identity resolved by the middleware.
func currentUser(c *echo.Context) string {
	user, _ := c.Get(userContextKey).(string)
	return user
}
