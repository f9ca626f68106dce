package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AppUser is a login for the web UI. Users are created by an admin; the very
// first admin is created through the bootstrap flow.
type AppUser struct {
	ID             int64      `gorm:"primaryKey;column:id"`
	Username       string     `gorm:"column:username;size:64;uniqueIndex;not null"`
	PasswordHash   string     `gorm:"column:password_hash;size:255;not null"`
	Role           string     `gorm:"column:role;size:16;not null;default:'user'"`
	IsActive       bool       `gorm:"column:is_active;not null;default:true"`
	CreatedAtUtc   time.Time  `gorm:"column:created_at"`
	UpdatedAtUtc   time.Time  `gorm:"column:updated_at"`
	LastLoginAtUtc *time.Time `gorm:"column:last_login_at"`
}

// TableName keeps the table name aligned with the original schema.
func (AppUser) TableName() string { return "app_users" }
