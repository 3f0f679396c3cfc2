//go:build unit

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodai-api/internal/handler/httperr"
	"foodai-api/internal/handler/middleware"
	"foodai-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	perform := func(router *gin.Engine, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("AbortWithError writes the error envelope and is left untouched", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/fail", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, errs.New("upstream down"), "Palvelu ei ole käytettävissä", nil)
		})

		w := perform(router, "/fail")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Palvelu ei ole käytettävissä"}}`, w.Body.String())
	})

	t.Run("drains an unwritten public error into its response", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/deferred", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusBadRequest}
			resp.Error.Message = "bad input"
			_ = c.Error(&gin.Error{
				Err:  errs.New("bind failed"),
				Type: gin.ErrorTypePublic,
				Meta: resp,
			})
			c.Abort()
		})

		w := perform(router, "/deferred")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":{"message":"bad input"}}`, w.Body.String())
	})

	t.Run("unhandled errors fall back to 500", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/oops", func(c *gin.Context) {
			_ = c.Error(errs.New("private failure"))
			c.Abort()
		})

		w := perform(router, "/oops")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
	})
}

type stubLimiter struct {
	allowed bool
	err     error
}

func (l stubLimiter) Allow(context.Context, string) (bool, error) {
	return l.allowed, l.err
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(l stubLimiter) *gin.Engine {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.POST("/chat", middleware.RateLimitMiddleware(l), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return router
	}

	perform := func(router *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/chat", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("allowed requests pass", func(t *testing.T) {
		w := perform(setup(stubLimiter{allowed: true}))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("exhausted window returns 429", func(t *testing.T) {
		w := perform(setup(stubLimiter{allowed: false}))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Too many requests")
	})

	t.Run("limiter errors fail open", func(t *testing.T) {
		w := perform(setup(stubLimiter{err: errs.New("redis unreachable")}))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
