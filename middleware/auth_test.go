package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"online-shop/config"
	"online-shop/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}

	router := gin.New()
	router.Use(AuthMiddleware())
	router.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt("user_id"),
			"email":   c.GetString("user_email"),
		})
	})
	return router
}

func getWithAuth(router *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	w := getWithAuth(authRouter(t), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header required")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	w := getWithAuth(authRouter(t), "Token abc123")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid authorization header format")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	w := getWithAuth(authRouter(t), "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthMiddleware_TokenSignedWithWrongSecret(t *testing.T) {
	router := authRouter(t)

	token, err := utils.GenerateToken(42, "user@example.com")
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "rotated-secret"
	w := getWithAuth(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	router := authRouter(t)

	token, err := utils.GenerateToken(42, "user@example.com")
	require.NoError(t, err)

	w := getWithAuth(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), "user@example.com")
}
