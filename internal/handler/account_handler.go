package handler

import (
	"net/http"
	"strconv"

	"gamevault/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// UpdateAccountInput defines the structure for a partial account update.
// Omitted fields keep their stored value.
type UpdateAccountInput struct {
	AccountName       *string `json:"accountName"`
	ExternalAccountID *string `json:"externalAccountId"`
	CredentialValue   *string `json:"credentialValue"`
}

// ResyncResponse reports how many games a sync stored.
type ResyncResponse struct {
	SyncedCount int `json:"syncedCount"`
}

// endregion

// region --- Handlers ---

// GetAccounts godoc
// @Summary      List saved accounts
// @Description  Returns every saved platform account with its credential masked.
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} store.SavedAccount
// @Failure      401 {object} ErrorResponse
// @Router       /accounts [get]
func GetAccounts(c *gin.Context) {
	accounts, err := libraryStore().GetAllAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// ResyncAccount godoc
// @Summary      Re-sync a saved account
// @Description  Replays the stored credential through the platform client and replaces the account's inventory.
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Account ID"
// @Success      200 {object} ResyncResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Account not found"
// @Router       /accounts/{id}/resync [post]
func ResyncAccount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid account ID"})
		return
	}

	count, appErr := librarySyncer().Resync(c.Request.Context(), id)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, ResyncResponse{SyncedCount: count})
}

// UpdateAccount godoc
// @Summary      Update a saved account
// @Description  Updates account name, external account id and/or credential. Renaming also refreshes the name snapshot on the account's games.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int                true "Account ID"
// @Param        input body UpdateAccountInput true "Fields to update"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Account not found"
// @Failure      409 {object} ErrorResponse "Account name already exists"
// @Router       /accounts/{id} [put]
func UpdateAccount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid account ID"})
		return
	}

	var input UpdateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	appErr := libraryStore().UpdateAccount(c.Request.Context(), id, store.UpdateAccountRequest{
		AccountName:       input.AccountName,
		ExternalAccountID: input.ExternalAccountID,
		CredentialValue:   input.CredentialValue,
	})
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account updated."})
}

// DeleteAccount godoc
// @Summary      Delete a saved account
// @Description  Deletes the account and every game synced under it.
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Account ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse "Account not found"
// @Router       /accounts/{id} [delete]
func DeleteAccount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid account ID"})
		return
	}

	if appErr := libraryStore().DeleteAccount(c.Request.Context(), id); appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted."})
}

// endregion
