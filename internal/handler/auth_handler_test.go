package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"
)

// setupAuthRoutes wires the auth routes the way the server does, backed by an
// in-memory database.
func setupAuthRoutes(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		JWTSecret:      "test-secret",
		BootstrapToken: "setup-token",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	router := gin.New()
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.GET("/bootstrap-status", BootstrapStatus)
		authRoutes.POST("/bootstrap-admin", BootstrapAdmin)
		authRoutes.POST("/login", Login)

		protected := authRoutes.Group("", auth.AuthMiddleware())
		{
			protected.GET("/me", Me)
			protected.POST("/users", auth.AdminMiddleware(), CreateUser)
		}
	}
	return router
}

func postJSON(router *gin.Engine, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func getJSON(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func bootstrapAdmin(t *testing.T, router *gin.Engine) {
	t.Helper()
	resp := postJSON(router, "/api/auth/bootstrap-admin",
		`{"setupToken":"setup-token","username":"admin","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}

func loginAs(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	resp := postJSON(router, "/api/auth/login",
		fmt.Sprintf(`{"username":%q,"password":%q}`, username, password), "")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body LoginResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

func TestBootstrapStatus(t *testing.T) {
	router := setupAuthRoutes(t)

	resp := getJSON(router, "/api/auth/bootstrap-status", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var status BootstrapStatusResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &status))
	assert.False(t, status.HasAnyUser)
	assert.True(t, status.BootstrapEnabled)

	bootstrapAdmin(t, router)

	resp = getJSON(router, "/api/auth/bootstrap-status", "")
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &status))
	assert.True(t, status.HasAnyUser)
	assert.False(t, status.BootstrapEnabled, "bootstrap closes once a user exists")
}

func TestBootstrapAdmin_InvalidToken(t *testing.T) {
	router := setupAuthRoutes(t)

	resp := postJSON(router, "/api/auth/bootstrap-admin",
		`{"setupToken":"wrong","username":"admin","password":"password123"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestBootstrapAdmin_OnlyOnce(t *testing.T) {
	router := setupAuthRoutes(t)
	bootstrapAdmin(t, router)

	resp := postJSON(router, "/api/auth/bootstrap-admin",
		`{"setupToken":"setup-token","username":"admin2","password":"password123"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLogin(t *testing.T) {
	router := setupAuthRoutes(t)
	bootstrapAdmin(t, router)

	token := loginAs(t, router, "admin", "password123")

	resp := getJSON(router, "/api/auth/me", token)
	require.Equal(t, http.StatusOK, resp.Code)
	var me CurrentUserResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &me))
	assert.Equal(t, "admin", me.Username)
	assert.Equal(t, "admin", me.Role)
}

func TestLogin_StampsLastLogin(t *testing.T) {
	router := setupAuthRoutes(t)
	bootstrapAdmin(t, router)

	var before models.AppUser
	require.NoError(t, database.DB.Where("username = ?", "admin").First(&before).Error)
	require.Nil(t, before.LastLoginAtUtc)

	loginAs(t, router, "admin", "password123")

	var after models.AppUser
	require.NoError(t, database.DB.Where("username = ?", "admin").First(&after).Error)
	require.NotNil(t, after.LastLoginAtUtc)
	assert.True(t, after.UpdatedAtUtc.After(before.UpdatedAtUtc) || after.UpdatedAtUtc.Equal(before.UpdatedAtUtc))
}

func TestLogin_WrongPassword(t *testing.T) {
	router := setupAuthRoutes(t)
	bootstrapAdmin(t, router)

	resp := postJSON(router, "/api/auth/login",
		`{"username":"admin","password":"wrong-password"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	router := setupAuthRoutes(t)

	resp := postJSON(router, "/api/auth/login",
		`{"username":"ghost","password":"password123"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestCreateUser(t *testing.T) {
	router := setupAuthRoutes(t)
	bootstrapAdmin(t, router)
	adminToken := loginAs(t, router, "admin", "password123")

	resp := postJSON(router, "/api/auth/users",
		`{"username":"guest","password":"password123"}`, adminToken)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	// The new user can log in and carries the default role.
	guestToken := loginAs(t, router, "guest", "password123")
	meResp := getJSON(router, "/api/auth/me", guestToken)
	require.Equal(t, http.StatusOK, meResp.Code)
	assert.Contains(t, meResp.Body.String(), `"role":"user"`)
}

func TestCreateUser_RequiresAdmin(t *testing.T) {
	router := setupAuthRoutes(t)
	bootstrapAdmin(t, router)
	adminToken := loginAs(t, router, "admin", "password123")

	resp := postJSON(router, "/api/auth/users",
		`{"username":"guest","password":"password123"}`, adminToken)
	require.Equal(t, http.StatusOK, resp.Code)
	guestToken := loginAs(t, router, "guest", "password123")

	resp = postJSON(router, "/api/auth/users",
		`{"username":"another","password":"password123"}`, guestToken)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	router := setupAuthRoutes(t)
	bootstrapAdmin(t, router)
	adminToken := loginAs(t, router, "admin", "password123")

	resp := postJSON(router, "/api/auth/users",
		`{"username":"guest","password":"password123"}`, adminToken)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = postJSON(router, "/api/auth/users",
		`{"username":"guest","password":"password123"}`, adminToken)
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestCreateUser_Validation(t *testing.T) {
	router := setupAuthRoutes(t)
	bootstrapAdmin(t, router)
	adminToken := loginAs(t, router, "admin", "password123")

	tests := []struct {
		name string
		body string
	}{
		{name: "short username", body: `{"username":"ab","password":"password123"}`},
		{name: "short password", body: `{"username":"guest","password":"short"}`},
		{name: "unknown role", body: `{"username":"guest","password":"password123","role":"owner"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(router, "/api/auth/users", tt.body, adminToken)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}
