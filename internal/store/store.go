// Package store is the persistence boundary: it owns every read and write of
// platform accounts and owned games and hands the core fully-materialized
// values.
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gamevault/backend/internal/apperr"
	"gamevault/backend/internal/library"
	"gamevault/backend/internal/models"

	"gorm.io/gorm"
)

// Store wraps a gorm connection.
type Store struct {
	db *gorm.DB
}

// New creates a store over the given connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// SavedAccount is the masked listing view of a platform account. The raw
// credential never leaves the store through this type.
type SavedAccount struct {
	ID                int64           `json:"id"`
	Platform          models.Platform `json:"platform"`
	AccountName       string          `json:"accountName"`
	ExternalAccountID *string         `json:"externalAccountId"`
	CredentialType    string          `json:"credentialType"`
	CredentialPreview string          `json:"credentialPreview"`
	CreatedAtUtc      time.Time       `json:"createdAtUtc"`
	UpdatedAtUtc      time.Time       `json:"updatedAtUtc"`
	LastSyncedAtUtc   *time.Time      `json:"lastSyncedAtUtc"`
}

// SaveAccountAndGames upserts the account matched on (platform, accountName)
// and replaces its entire game list, all inside one transaction. Incoming
// games are deduplicated by external id (case-insensitive, first wins) and
// blank titles are dropped. A failure at any step leaves prior state intact.
func (s *Store) SaveAccountAndGames(
	ctx context.Context,
	platform models.Platform,
	accountName string,
	externalAccountID *string,
	credentialType string,
	credentialValue string,
	games []library.OwnedGame,
) *apperr.Error {
	safeAccountName := strings.TrimSpace(accountName)
	if safeAccountName == "" {
		return apperr.New(apperr.Validation, "Account name is required.")
	}
	safeCredentialType := strings.TrimSpace(credentialType)
	if safeCredentialType == "" {
		return apperr.New(apperr.Validation, "Credential type is required.")
	}
	safeCredentialValue := strings.TrimSpace(credentialValue)
	if safeCredentialValue == "" {
		return apperr.New(apperr.Validation, "Credential value is required.")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		var account models.PlatformAccount
		err := tx.Where("platform = ? AND account_name = ?", platform, safeAccountName).
			First(&account).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			account = models.PlatformAccount{
				Platform:          platform,
				AccountName:       safeAccountName,
				ExternalAccountID: normalizeOptional(externalAccountID),
				CredentialType:    safeCredentialType,
				CredentialValue:   safeCredentialValue,
				CreatedAtUtc:      now,
				UpdatedAtUtc:      now,
				LastSyncedAtUtc:   &now,
			}
			if err := tx.Create(&account).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			account.ExternalAccountID = normalizeOptional(externalAccountID)
			account.CredentialType = safeCredentialType
			account.CredentialValue = safeCredentialValue
			account.UpdatedAtUtc = now
			account.LastSyncedAtUtc = &now
			if err := tx.Save(&account).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("account_id = ?", account.ID).
			Delete(&models.OwnedGame{}).Error; err != nil {
			return err
		}

		rows := buildGameRows(account.ID, platform, safeAccountName, games, now)
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return apperr.New(apperr.Internal, "Failed to save account and games.")
	}

	return nil
}

// buildGameRows drops blank titles, deduplicates by external id keeping the
// first occurrence (platform APIs may repeat an id within one response) and
// stamps rows with the sync time and precomputed normalized title.
func buildGameRows(
	accountID int64,
	platform models.Platform,
	accountName string,
	games []library.OwnedGame,
	syncedAt time.Time,
) []models.OwnedGame {
	seen := make(map[string]struct{}, len(games))
	rows := make([]models.OwnedGame, 0, len(games))
	for _, game := range games {
		if strings.TrimSpace(game.Title) == "" {
			continue
		}
		idKey := strings.ToLower(game.ExternalID)
		if _, dup := seen[idKey]; dup {
			continue
		}
		seen[idKey] = struct{}{}

		rows = append(rows, models.OwnedGame{
			AccountID:       accountID,
			Platform:        platform,
			AccountName:     accountName,
			ExternalGameID:  game.ExternalID,
			Title:           game.Title,
			NormalizedTitle: library.NormalizeTitle(game.Title),
			EpicAppName:     optionalFromString(game.EpicAppName),
			SyncedAtUtc:     syncedAt,
			CreatedAtUtc:    syncedAt,
		})
	}
	return rows
}

// GetAllGames returns every owned-game row ordered by title.
func (s *Store) GetAllGames(ctx context.Context) ([]library.OwnedGame, *apperr.Error) {
	var rows []models.OwnedGame
	if err := s.db.WithContext(ctx).Order("title").Find(&rows).Error; err != nil {
		return nil, apperr.New(apperr.Internal, "Failed to load games.")
	}

	games := make([]library.OwnedGame, 0, len(rows))
	for _, row := range rows {
		games = append(games, library.OwnedGame{
			ExternalID:  row.ExternalGameID,
			Title:       row.Title,
			Platform:    row.Platform,
			AccountName: row.AccountName,
			EpicAppName: stringFromOptional(row.EpicAppName),
			SyncedAtUtc: row.SyncedAtUtc,
		})
	}
	return games, nil
}

// GetAllAccounts returns every saved account with its credential masked,
// ordered by platform then account name.
func (s *Store) GetAllAccounts(ctx context.Context) ([]SavedAccount, *apperr.Error) {
	var rows []models.PlatformAccount
	if err := s.db.WithContext(ctx).
		Order("platform").Order("account_name").
		Find(&rows).Error; err != nil {
		return nil, apperr.New(apperr.Internal, "Failed to load accounts.")
	}

	accounts := make([]SavedAccount, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, SavedAccount{
			ID:                row.ID,
			Platform:          row.Platform,
			AccountName:       row.AccountName,
			ExternalAccountID: row.ExternalAccountID,
			CredentialType:    row.CredentialType,
			CredentialPreview: MaskCredential(row.CredentialValue),
			CreatedAtUtc:      row.CreatedAtUtc,
			UpdatedAtUtc:      row.UpdatedAtUtc,
			LastSyncedAtUtc:   row.LastSyncedAtUtc,
		})
	}
	return accounts, nil
}

// GetAccount loads one account including its stored credential. Callers must
// never serialize the result; listing goes through GetAllAccounts.
func (s *Store) GetAccount(ctx context.Context, id int64) (*models.PlatformAccount, *apperr.Error) {
	var account models.PlatformAccount
	err := s.db.WithContext(ctx).First(&account, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Account not found.")
	}
	if err != nil {
		return nil, apperr.New(apperr.Internal, "Failed to load account.")
	}
	return &account, nil
}

// UpdateAccountRequest carries a partial account update. Nil means "keep the
// stored value"; a provided external id that is blank clears it.
type UpdateAccountRequest struct {
	AccountName       *string
	ExternalAccountID *string
	CredentialValue   *string
}

// UpdateAccount applies a partial update. Renaming refreshes the account-name
// snapshot on the account's owned games so historical rows display the new
// name. A name already taken on the platform is a conflict.
func (s *Store) UpdateAccount(ctx context.Context, id int64, req UpdateAccountRequest) *apperr.Error {
	var appErr *apperr.Error
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.PlatformAccount
		err := tx.First(&account, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			appErr = apperr.New(apperr.NotFound, "Account not found.")
			return appErr
		}
		if err != nil {
			return err
		}

		accountName := account.AccountName
		if req.AccountName != nil && strings.TrimSpace(*req.AccountName) != "" {
			accountName = strings.TrimSpace(*req.AccountName)
		}

		credentialValue := account.CredentialValue
		if req.CredentialValue != nil {
			credentialValue = strings.TrimSpace(*req.CredentialValue)
		}
		if credentialValue == "" {
			appErr = apperr.New(apperr.Validation, "CredentialValue cannot be empty.")
			return appErr
		}

		externalAccountID := account.ExternalAccountID
		if req.ExternalAccountID != nil {
			externalAccountID = normalizeOptional(req.ExternalAccountID)
		}

		if account.Platform == models.PlatformSteam && externalAccountID == nil {
			appErr = apperr.New(apperr.Validation, "Steam account requires ExternalAccountId (SteamId).")
			return appErr
		}

		nameChanged := accountName != account.AccountName
		if nameChanged {
			var taken int64
			if err := tx.Model(&models.PlatformAccount{}).
				Where("platform = ? AND account_name = ? AND id <> ?", account.Platform, accountName, account.ID).
				Count(&taken).Error; err != nil {
				return err
			}
			if taken > 0 {
				appErr = apperr.New(apperr.Conflict, "Account name already exists for this platform.")
				return appErr
			}
		}

		account.AccountName = accountName
		account.ExternalAccountID = externalAccountID
		account.CredentialValue = credentialValue
		account.UpdatedAtUtc = time.Now().UTC()
		if err := tx.Save(&account).Error; err != nil {
			return err
		}

		if nameChanged {
			if err := tx.Model(&models.OwnedGame{}).
				Where("account_id = ?", account.ID).
				Update("account_name", accountName).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if appErr != nil {
		return appErr
	}
	if err != nil {
		return apperr.New(apperr.Internal, "Failed to update account.")
	}
	return nil
}

// DeleteAccount removes the account and its games. The games delete is
// explicit so the behavior does not depend on the backend enforcing the
// cascade constraint.
func (s *Store) DeleteAccount(ctx context.Context, id int64) *apperr.Error {
	var appErr *apperr.Error
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.PlatformAccount
		err := tx.First(&account, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			appErr = apperr.New(apperr.NotFound, "Account not found.")
			return appErr
		}
		if err != nil {
			return err
		}

		if err := tx.Where("account_id = ?", account.ID).
			Delete(&models.OwnedGame{}).Error; err != nil {
			return err
		}
		return tx.Delete(&account).Error
	})
	if appErr != nil {
		return appErr
	}
	if err != nil {
		return apperr.New(apperr.Internal, "Failed to delete account.")
	}
	return nil
}

// MaskCredential renders a credential for display: short values become all
// asterisks, longer ones keep the first and last four characters.
func MaskCredential(credential string) string {
	value := strings.TrimSpace(credential)
	if value == "" {
		return ""
	}
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + "****" + value[len(value)-4:]
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func optionalFromString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

func stringFromOptional(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
