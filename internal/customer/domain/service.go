package domain

import (
	"context"
	"errors"
)

type Repository interface {
	Insert(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
}

type Service interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
}

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")
)
