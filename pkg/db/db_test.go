package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

func TestNewTestSchemaVisibleAcrossConnections(t *testing.T) {
	conn, err := NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&testRecord{}))
	require.NoError(t, conn.Create(&testRecord{ID: 1, Name: "a"}).Error)

	sqlDB, err := conn.DB()
	require.NoError(t, err)

	ctx := context.Background()

	// Holding two pooled connections at once forces a second, freshly dialed
	// one; the named shared-cache database must be visible from it too.
	c1, err := sqlDB.Conn(ctx)
	require.NoError(t, err)
	defer c1.Close()

	c2, err := sqlDB.Conn(ctx)
	require.NoError(t, err)
	defer c2.Close()

	var name string
	require.NoError(t, c2.QueryRowContext(ctx, "SELECT name FROM test_records WHERE id = 1").Scan(&name))
	assert.Equal(t, "a", name)
}

func TestNewTestIsolatesDatabases(t *testing.T) {
	first, err := NewTest()
	require.NoError(t, err)
	require.NoError(t, first.AutoMigrate(&testRecord{}))
	require.NoError(t, first.Create(&testRecord{ID: 1, Name: "a"}).Error)

	second, err := NewTest()
	require.NoError(t, err)

	var count int64
	err = second.Table("test_records").Count(&count).Error
	assert.Error(t, err, "each call opens its own database")
}
