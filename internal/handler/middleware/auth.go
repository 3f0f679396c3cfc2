package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"foodai-api/internal/handler/httperr"
	"foodai-api/internal/pkg/errs"
	"foodai-api/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxAdminIDKey = "admin_id"

// AuthMiddleware guards the admin dashboard routes. When no secret is
// configured the guard stays open, matching the convention-only protection
// the dashboards launched with.
type AuthMiddleware struct {
	svc     *jwt.Service
	enabled bool
}

func NewAuthMiddleware(svc *jwt.Service, enabled bool) *AuthMiddleware {
	if !enabled {
		slog.Warn("admin JWT secret not configured, admin routes are unprotected")
	}
	return &AuthMiddleware{svc: svc, enabled: enabled}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing bearer token"), "Access token required", nil)
			return
		}

		claims, err := m.svc.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxAdminIDKey, claims.AdminID.String())
		c.Next()
	}
}

// GetAdminID returns the authenticated admin id, or "" when the guard is
// open or the route is public.
func GetAdminID(c *gin.Context) string {
	adminID, exists := c.Get(ctxAdminIDKey)
	if !exists {
		return ""
	}
	id, ok := adminID.(string)
	if !ok {
		return ""
	}
	return id
}
