package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

func adminProtectedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := ApiHandler{JwtSecret: secret}

	router := gin.New()
	router.POST("/protected", handler.adminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ok"})
	})
	return router
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func Test_adminAuthMiddleware(t *testing.T) {
	const secret = "test-secret"

	t.Run("admin token passes", func(t *testing.T) {
		router := adminProtectedRouter(secret)
		token := signToken(t, secret, jwt.MapClaims{"role": "admin"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		require.Equal(t, 200, w.Code)
	})

	t.Run("missing header is 401", func(t *testing.T) {
		router := adminProtectedRouter(secret)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, 401, w.Code)
	})

	t.Run("wrong secret is 401", func(t *testing.T) {
		router := adminProtectedRouter(secret)
		token := signToken(t, "other-secret", jwt.MapClaims{"role": "admin"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		require.Equal(t, 401, w.Code)
	})

	t.Run("non-admin role is 403", func(t *testing.T) {
		router := adminProtectedRouter(secret)
		token := signToken(t, secret, jwt.MapClaims{"role": "viewer"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		require.Equal(t, 403, w.Code)
	})
}
