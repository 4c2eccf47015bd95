package db

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/observability/logger"
	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("db",
	fx.Provide(Open),
)

// Open connects to the configured database with the zap-backed query logger
// and closes the pool on shutdown.
func Open(lc fx.Lifecycle, cfg config.Config) (*gorm.DB, error) {
	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(logger.DefaultGormLoggerConfig()),
	})
	if err != nil {
		return nil, err
	}

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				sqlDB, err := conn.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		})
	}

	return conn, nil
}

var testDBSeq atomic.Int64

// NewTest opens an isolated in-memory sqlite database for tests. Each call
// names its own database; cache=shared keeps every pooled connection on the
// same instance instead of a fresh empty one.
func NewTest() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}
