package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodai-api/internal/handler/httperr"
	"foodai-api/internal/infra/ratelimit"
	"foodai-api/internal/pkg/errs"
)

// RateLimitMiddleware caps chat requests per client IP. Limiter errors fail
// open so a broken limiter never takes the chat down.
func RateLimitMiddleware(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.Next()
			return
		}
		if !allowed {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errs.New("rate limit exceeded"), "Too many requests, please try again later", nil)
			return
		}
		c.Next()
	}
}
