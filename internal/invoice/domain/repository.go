package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Insert(ctx context.Context, invoice *Invoice) error
	// Update rewrites customer reference, amount and status for the given
	// identifier; it reports ErrNotFound when no row matched.
	Update(ctx context.Context, id snowflake.ID, customerID string, amount int64, status Status) error
	// Delete removes the row for the given identifier; it reports
	// ErrNotFound when no row matched.
	Delete(ctx context.Context, id snowflake.ID) error
	FindByID(ctx context.Context, id snowflake.ID) (*Invoice, error)
	List(ctx context.Context) ([]Invoice, error)
}
