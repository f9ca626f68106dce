package handler

import (
	"net/http"

	"gamevault/backend/internal/syncer"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// SteamSyncInput defines the structure for a fresh Steam sync.
type SteamSyncInput struct {
	SteamID     string `json:"steamId" binding:"required" example:"76561198000000000"`
	APIKey      string `json:"apiKey"`
	AccountName string `json:"accountName"`
}

// EpicSyncInput defines the structure for a fresh Epic sync.
type EpicSyncInput struct {
	AccessToken string `json:"accessToken" binding:"required"`
	AccountName string `json:"accountName"`
}

// endregion

// region --- Handlers ---

// SyncSteam godoc
// @Summary      Sync a Steam library
// @Description  Fetches the owned games of a SteamID64 and replaces that account's stored inventory. The API key falls back to the server configuration when omitted.
// @Tags         sync
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SteamSyncInput true "Sync Info"
// @Success      200 {object} ResyncResponse
// @Failure      400 {object} ErrorResponse
// @Router       /sync/steam [post]
func SyncSteam(c *gin.Context) {
	var input SteamSyncInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "SteamId is required."})
		return
	}

	count, appErr := librarySyncer().SyncSteam(c.Request.Context(), syncer.SteamSyncRequest{
		SteamID:     input.SteamID,
		APIKey:      input.APIKey,
		AccountName: input.AccountName,
	})
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, ResyncResponse{SyncedCount: count})
}

// SyncEpic godoc
// @Summary      Sync an Epic library
// @Description  Fetches the library items behind an Epic access token and replaces that account's stored inventory.
// @Tags         sync
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body EpicSyncInput true "Sync Info"
// @Success      200 {object} ResyncResponse
// @Failure      400 {object} ErrorResponse
// @Router       /sync/epic [post]
func SyncEpic(c *gin.Context) {
	var input EpicSyncInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Epic access token is required."})
		return
	}

	count, appErr := librarySyncer().SyncEpic(c.Request.Context(), syncer.EpicSyncRequest{
		AccessToken: input.AccessToken,
		AccountName: input.AccountName,
	})
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, ResyncResponse{SyncedCount: count})
}

// endregion
