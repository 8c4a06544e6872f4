// Package storage provides key-based data access for each entity, backed by
// PostgreSQL. Every method maps missing rows and constraint violations to the
// apperr taxonomy so callers never inspect driver errors.
package storage

import (
	"context"

	"github.com/felipesousa7/ecommerce-order-system/internal/model"
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type ProductStore interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListAvailable(ctx context.Context) ([]model.Product, error)
	NameExists(ctx context.Context, name string) (bool, error)
}

type OrderStore interface {
	// Create persists the order and its items in one transaction and fills
	// in the generated ids.
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// UpdateStatus is a single atomic record update; it also bumps updated_at.
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
}
