package handler

import (
	"net/http"
	"strconv"

	"gamevault/backend/internal/library"
	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetLibrary godoc
// @Summary      Get the aggregated library
// @Description  Returns total and duplicate-group counts, the cross-platform duplicate groups, and optionally the full collapsed game list.
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        includeGames query bool false "Include the full collapsed game list" default(false)
// @Success      200 {object} library.LibraryResponse
// @Failure      401 {object} ErrorResponse
// @Router       /library [get]
func GetLibrary(c *gin.Context) {
	includeGames, _ := strconv.ParseBool(c.DefaultQuery("includeGames", "false"))

	response, err := libraryQuery().GetLibrary(c.Request.Context(), includeGames)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetLibraryGames godoc
// @Summary      Get a page of grouped library games
// @Description  Filters owned games, groups them per account and title, and paginates the groups with their raw rows attached.
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        gameTitle         query string false "Substring filter on title"
// @Param        platform          query string false "Exact platform filter (Steam or Epic)"
// @Param        accountName       query string false "Substring filter on account name"
// @Param        accountExternalId query string false "Substring filter on account external id"
// @Param        pageNumber        query int    false "Page number" default(1)
// @Param        pageSize          query int    false "Page size (max 100)" default(20)
// @Success      200 {object} library.LibraryGamesPageResponse
// @Failure      400 {object} ErrorResponse "Unknown platform"
// @Failure      401 {object} ErrorResponse
// @Router       /library/games [get]
func GetLibraryGames(c *gin.Context) {
	query := library.LibraryGamesQuery{
		GameTitle:         c.Query("gameTitle"),
		AccountName:       c.Query("accountName"),
		AccountExternalID: c.Query("accountExternalId"),
	}

	if raw := c.Query("platform"); raw != "" {
		platform, ok := models.ParsePlatform(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown platform: " + raw})
			return
		}
		query.Platform = &platform
	}

	// Out-of-range paging values are clamped by the query service.
	query.PageNumber, _ = strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	query.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	response, err := libraryQuery().GetLibraryGamesPage(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
