package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamevault/backend/internal/config"
	"gamevault/backend/internal/models"
	"gamevault/backend/pkg/jwt"
)

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	router := gin.New()
	protected := router.Group("/", AuthMiddleware())
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetInt64("userID"),
			"username": c.GetString("username"),
			"role":     c.GetString("role"),
		})
	})
	admin := protected.Group("/", AdminMiddleware())
	admin.GET("/admin-only", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := setupAuthTest(t)

	resp := doRequest(router, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := setupAuthTest(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no scheme", header: "just-a-token"},
		{name: "wrong scheme", header: "Basic abc123"},
		{name: "missing token", header: "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(router, "/whoami", tt.header)
			assert.Equal(t, http.StatusUnauthorized, resp.Code)
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := setupAuthTest(t)

	resp := doRequest(router, "/whoami", "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthMiddleware_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	router := setupAuthTest(t)

	config.AppConfig.JWTSecret = "other-secret"
	token, _, err := jwt.GenerateToken(1, "alice", models.RoleUser)
	require.NoError(t, err)
	config.AppConfig.JWTSecret = "test-secret"

	resp := doRequest(router, "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	router := setupAuthTest(t)

	token, _, err := jwt.GenerateToken(42, "alice", models.RoleUser)
	require.NoError(t, err)

	resp := doRequest(router, "/whoami", "Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"userID":42`)
	assert.Contains(t, resp.Body.String(), `"username":"alice"`)
	assert.Contains(t, resp.Body.String(), `"role":"user"`)
}

func TestAdminMiddleware(t *testing.T) {
	router := setupAuthTest(t)

	t.Run("user role is forbidden", func(t *testing.T) {
		token, _, err := jwt.GenerateToken(1, "alice", models.RoleUser)
		require.NoError(t, err)

		resp := doRequest(router, "/admin-only", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("admin role passes", func(t *testing.T) {
		token, _, err := jwt.GenerateToken(1, "root", models.RoleAdmin)
		require.NoError(t, err)

		resp := doRequest(router, "/admin-only", "Bearer "+token)
		assert.Equal(t, http.StatusOK, resp.Code)
	})
}
