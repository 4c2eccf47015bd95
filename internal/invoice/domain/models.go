// Package domain contains persistence models and contracts for invoicing.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status represents invoice lifecycle states.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Valid reports whether the status is one of the two defined values.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice represents a single billing record. Amount is stored as an integer
// count of minor currency units (cents). ID and Date are assigned at creation
// and never change afterwards.
type Invoice struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	CustomerID string       `gorm:"not null;index;type:text" json:"customer_id"`
	Amount     int64        `gorm:"not null" json:"amount"`
	Status     Status       `gorm:"type:text;not null;default:'pending'" json:"status"`
	Date       string       `gorm:"type:text;not null" json:"date"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }
