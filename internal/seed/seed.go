// Package seed bootstraps the default admin account and demo data for local
// and self-hosted setups.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/finboard/finboard/internal/auth/domain"
	"github.com/finboard/finboard/internal/auth/password"
	customerdomain "github.com/finboard/finboard/internal/customer/domain"
	invoicedomain "github.com/finboard/finboard/internal/invoice/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultAdminEmail    = "admin@finboard.local"
	defaultAdminPassword = "changeme"
	defaultAdminName     = "Finboard Admin"
)

// EnsureAdminUser creates the default dashboard account when none exists.
func EnsureAdminUser(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user authdomain.User
		err := tx.Where("email = ?", defaultAdminEmail).First(&user).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := password.Hash(defaultAdminPassword)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		user = authdomain.User{
			ID:           node.Generate(),
			Name:         defaultAdminName,
			Email:        defaultAdminEmail,
			PasswordHash: hashed,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return tx.Create(&user).Error
	})
}

// EnsureDemoData inserts a handful of customers and invoices so a fresh
// install has something to show on the dashboard.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&customerdomain.Customer{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		customers := []customerdomain.Customer{
			{ID: uuid.NewString(), Name: "Evil Rabbit", Email: "evil@rabbit.com"},
			{ID: uuid.NewString(), Name: "Delba de Oliveira", Email: "delba@oliveira.com"},
			{ID: uuid.NewString(), Name: "Lee Robinson", Email: "lee@robinson.com"},
		}
		for i := range customers {
			customers[i].Metadata = datatypes.JSONMap{}
			customers[i].CreatedAt = now
			customers[i].UpdatedAt = now
			if err := tx.Create(&customers[i]).Error; err != nil {
				return err
			}
		}

		date := now.Format("2006-01-02")
		invoices := []invoicedomain.Invoice{
			{ID: node.Generate(), CustomerID: customers[0].ID, Amount: 15795, Status: invoicedomain.StatusPending, Date: date},
			{ID: node.Generate(), CustomerID: customers[1].ID, Amount: 20348, Status: invoicedomain.StatusPaid, Date: date},
			{ID: node.Generate(), CustomerID: customers[2].ID, Amount: 54246, Status: invoicedomain.StatusPaid, Date: date},
		}
		for i := range invoices {
			invoices[i].CreatedAt = now
			invoices[i].UpdatedAt = now
			if err := tx.Create(&invoices[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
