package repository

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/finboard/finboard/internal/auth/domain"
	"github.com/finboard/finboard/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDuplicateEmail(t *testing.T) {
	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.User{}))

	users, _ := New(conn)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	first := &domain.User{
		ID:           node.Generate(),
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, users.Create(context.Background(), first))

	// Same email, fresh id: the unique index rejects it and the repository
	// reports the domain sentinel, not a raw driver error.
	second := &domain.User{
		ID:           node.Generate(),
		Name:         "Ada Again",
		Email:        "ada@example.com",
		PasswordHash: "y",
	}
	err = users.Create(context.Background(), second)
	assert.ErrorIs(t, err, domain.ErrUserExists)
}
