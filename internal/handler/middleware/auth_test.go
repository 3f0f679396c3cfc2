//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodai-api/internal/handler/middleware"
	"foodai-api/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAdminRouter(t *testing.T, secret string, enabled bool) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService(secret, time.Hour)
	mw := middleware.NewAuthMiddleware(svc, enabled)

	router := gin.New()
	router.GET("/admin/overview", mw.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"adminId": middleware.GetAdminID(c)})
	})
	return router, svc
}

func performGet(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/overview", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin(t *testing.T) {
	t.Run("open guard passes everything through", func(t *testing.T) {
		router, _ := setupAdminRouter(t, "", false)

		w := performGet(router, "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		router, _ := setupAdminRouter(t, "secret", true)

		w := performGet(router, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes and exposes the admin id", func(t *testing.T) {
		router, svc := setupAdminRouter(t, "secret", true)
		adminID := uuid.New()
		token, err := svc.GenerateToken(adminID, "admin@foodai.fi")
		require.NoError(t, err)

		w := performGet(router, token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), adminID.String())
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		router, _ := setupAdminRouter(t, "secret", true)

		w := performGet(router, "not.a.token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		router, _ := setupAdminRouter(t, "secret", true)
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(uuid.New(), "admin@foodai.fi")
		require.NoError(t, err)

		w := performGet(router, token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
