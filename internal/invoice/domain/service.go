package domain

import (
	"context"
	"errors"
)

// MutationInput carries the raw, untyped form values of one create or update
// attempt. Amount is still a numeric literal in string form.
type MutationInput struct {
	CustomerID string
	Amount     string
	Status     string
}

type Service interface {
	Create(ctx context.Context, input MutationInput) Result
	Update(ctx context.Context, id string, input MutationInput) Result
	Delete(ctx context.Context, id string) Result

	List(ctx context.Context) ([]Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
}

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")
)
