package models

import "time"

// PlatformAccount is a saved storefront account together with the credential
// used to sync it. The account name is unique per platform.
type PlatformAccount struct {
	ID                int64      `gorm:"primaryKey;column:id"`
	Platform          Platform   `gorm:"column:platform;size:32;not null;uniqueIndex:uk_platform_account_name;index:idx_platform_external_account"`
	AccountName       string     `gorm:"column:account_name;size:128;not null;uniqueIndex:uk_platform_account_name"`
	ExternalAccountID *string    `gorm:"column:external_account_id;size:128;index:idx_platform_external_account"`
	CredentialType    string     `gorm:"column:credential_type;size:64;not null"`
	CredentialValue   string     `gorm:"column:credential_value;type:text;not null"`
	CreatedAtUtc      time.Time  `gorm:"column:created_at"`
	UpdatedAtUtc      time.Time  `gorm:"column:updated_at"`
	LastSyncedAtUtc   *time.Time `gorm:"column:last_synced_at"`

	OwnedGames []OwnedGame `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the table name aligned with the original schema.
func (PlatformAccount) TableName() string { return "platform_accounts" }
