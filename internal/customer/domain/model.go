// Package domain contains persistence models and contracts for customers.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Customer is the reference data the invoice form selects from.
type Customer struct {
	ID        string            `gorm:"primaryKey;type:text" json:"id"`
	Name      string            `gorm:"not null" json:"name"`
	Email     string            `gorm:"not null" json:"email"`
	ImageURL  string            `gorm:"type:text" json:"image_url,omitempty"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }
