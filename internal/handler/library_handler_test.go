package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/library"
	"gamevault/backend/internal/models"
	"gamevault/backend/internal/store"
)

func setupLibraryRoutes(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	router := gin.New()
	libraryRoutes := router.Group("/api/library")
	{
		libraryRoutes.GET("", GetLibrary)
		libraryRoutes.GET("/games", GetLibraryGames)
	}
	return router
}

func seedLibrary(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	st := store.New(database.DB)

	steamID := "76561198000000001"
	now := time.Now().UTC()
	require.Nil(t, st.SaveAccountAndGames(ctx, models.PlatformSteam, "alice", &steamID,
		"steam_api_key", "KEY12345678", []library.OwnedGame{
			{ExternalID: "620", Title: "Portal 2", Platform: models.PlatformSteam, SyncedAtUtc: now},
			{ExternalID: "570", Title: "Dota 2", Platform: models.PlatformSteam, SyncedAtUtc: now},
		}))
	require.Nil(t, st.SaveAccountAndGames(ctx, models.PlatformEpic, "EpicAccount", nil,
		"epic_access_token", "TOKEN1234567890", []library.OwnedGame{
			{ExternalID: "p2", Title: "Portal-2", Platform: models.PlatformEpic, SyncedAtUtc: now},
		}))
}

func TestGetLibrary_Handler(t *testing.T) {
	router := setupLibraryRoutes(t)
	seedLibrary(t)

	resp := getJSON(router, "/api/library?includeGames=true", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var body library.LibraryResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 3, body.TotalGames)
	assert.Equal(t, 1, body.DuplicateGroups)
	assert.Len(t, body.Games, 3)
	require.Len(t, body.Duplicates, 1)
	assert.Equal(t, "portal2", body.Duplicates[0].NormalizedTitle)
}

func TestGetLibrary_Handler_CountsOnly(t *testing.T) {
	router := setupLibraryRoutes(t)
	seedLibrary(t)

	resp := getJSON(router, "/api/library", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var body library.LibraryResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 3, body.TotalGames)
	assert.Empty(t, body.Games)
	assert.Contains(t, resp.Body.String(), `"games":[]`, "games must serialize as an array")
}

func TestGetLibraryGames_Handler(t *testing.T) {
	router := setupLibraryRoutes(t)
	seedLibrary(t)

	resp := getJSON(router, "/api/library/games?platform=steam&pageSize=1", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var body library.LibraryGamesPageResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.TotalCount)
	assert.Equal(t, 1, body.PageSize)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Dota 2", body.Items[0].Title)
}

func TestGetLibraryGames_Handler_UnknownPlatform(t *testing.T) {
	router := setupLibraryRoutes(t)

	resp := getJSON(router, "/api/library/games?platform=GOG", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Unknown platform: GOG")
}
