package migration

import (
	authdomain "github.com/finboard/finboard/internal/auth/domain"
	"github.com/finboard/finboard/internal/config"
	customerdomain "github.com/finboard/finboard/internal/customer/domain"
	invoicedomain "github.com/finboard/finboard/internal/invoice/domain"
	"github.com/finboard/finboard/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// Non-postgres dialects (sqlite for local runs) fall back to
			// schema sync from the models.
			if err := conn.AutoMigrate(
				&authdomain.User{},
				&authdomain.Session{},
				&customerdomain.Customer{},
				&invoicedomain.Invoice{},
			); err != nil {
				return err
			}
		}

		if err := seed.EnsureAdminUser(conn); err != nil {
			return err
		}
		if cfg.SeedDemoData {
			return seed.EnsureDemoData(conn)
		}
		return nil
	}),
)
