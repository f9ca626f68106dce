package models

import "time"

// OwnedGame is one synced library row. Rows are replaced wholesale on every
// sync of their account; platform and account name are denormalized snapshots
// so library queries never need the accounts table for display fields.
type OwnedGame struct {
	ID              int64     `gorm:"primaryKey;column:id"`
	AccountID       int64     `gorm:"column:account_id;not null;uniqueIndex:uk_account_external_game"`
	Platform        Platform  `gorm:"column:platform;size:32;not null;index:idx_platform_account"`
	AccountName     string    `gorm:"column:account_name;size:128;not null;index:idx_platform_account"`
	ExternalGameID  string    `gorm:"column:external_game_id;size:128;not null;uniqueIndex:uk_account_external_game"`
	Title           string    `gorm:"column:title;size:512;not null"`
	NormalizedTitle string    `gorm:"column:normalized_title;size:512;not null;index:idx_normalized_title"`
	EpicAppName     *string   `gorm:"column:epic_app_name;size:128"`
	SyncedAtUtc     time.Time `gorm:"column:synced_at"`
	CreatedAtUtc    time.Time `gorm:"column:created_at"`
}

// TableName keeps the table name aligned with the original schema.
func (OwnedGame) TableName() string { return "owned_games" }
