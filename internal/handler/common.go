package handler

import (
	"gamevault/backend/internal/apperr"
	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/library"
	"gamevault/backend/internal/platform"
	"gamevault/backend/internal/store"
	"gamevault/backend/internal/syncer"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Message string `json:"message" example:"An error message"`
}

// MessageResponse represents a generic success message.
type MessageResponse struct {
	Message string `json:"message" example:"Done"`
}

// respondError maps the service error kind onto its HTTP status.
func respondError(c *gin.Context, err *apperr.Error) {
	c.JSON(apperr.HTTPStatus(err.Kind), gin.H{"message": err.Message})
}

func libraryStore() *store.Store {
	return store.New(database.DB)
}

func libraryQuery() *library.QueryService {
	return library.NewQueryService(database.DB, libraryStore())
}

func librarySyncer() *syncer.Syncer {
	return syncer.New(
		platform.NewSteamClient(),
		platform.NewEpicClient(),
		libraryStore(),
		config.AppConfig.SteamAPIKey,
	)
}
