// Package domain contains persistence models and contracts for authentication.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// User represents a dashboard account with local credentials.
type User struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"not null" json:"name"`
	Email        string       `gorm:"not null;uniqueIndex" json:"email"`
	PasswordHash string       `gorm:"not null" json:"-"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

// Session represents an authenticated browser session. Only the sha256 hash of
// the session token is stored.
type Session struct {
	ID               snowflake.ID `gorm:"primaryKey"`
	UserID           snowflake.ID `gorm:"not null;index"`
	SessionTokenHash string       `gorm:"not null;uniqueIndex"`
	UserAgent        string       `gorm:"type:text"`
	IPAddress        string       `gorm:"type:text"`
	ExpiresAt        time.Time    `gorm:"not null"`
	RevokedAt        *time.Time   `gorm:""`
	CreatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	LastSeenAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Session) TableName() string { return "sessions" }
