package repository

import (
	"context"

	"food-ordering-assistant/internal/model"
)

// Repository is the composed interface for the ordering data store.
type Repository interface {
	OrderRepository
	UserRepository
}

// OrderRepository defines data access for Order records.
type OrderRepository interface {
	// GetOneOrder returns a zero-value Order (ID == "") when not found.
	GetOneOrder(ctx context.Context, id string) (model.Order, error)
	ListOrders(ctx context.Context, opt ListOrdersOptions) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error
	CountOrders(ctx context.Context) (int, error)
	// SumPaidAmountSince totals the amounts of paid orders placed at or
	// after the given instant.
	SumPaidAmountSince(ctx context.Context, since string) (float64, error)
}

// UserRepository defines data access for User records.
type UserRepository interface {
	// GetOneUser returns a zero-value User (ID == "") when not found.
	GetOneUser(ctx context.Context, id string) (model.User, error)
	CountUsers(ctx context.Context) (int, error)
}
