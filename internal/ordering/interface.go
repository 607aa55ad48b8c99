package ordering

import (
	"context"

	"food-ordering-assistant/internal/model"
)

// UseCase manages order and user records for the assistant.
type UseCase interface {
	// ListRecent returns the newest orders across all users.
	ListRecent(ctx context.Context, limit int) (ListOrdersOutput, error)

	// ListByUser returns a user's newest orders.
	ListByUser(ctx context.Context, userID string, limit int) (ListOrdersOutput, error)

	// ListActiveByUser returns a user's orders still in flight
	// (Food Processing or Out for delivery), newest first.
	ListActiveByUser(ctx context.Context, userID string, limit int) (ListOrdersOutput, error)

	// UpdateStatus normalizes the raw status text against the enumeration
	// and applies it to the order. ErrInvalidStatus when the text resolves
	// to nothing valid; ErrOrderNotFound when the order is unknown.
	UpdateStatus(ctx context.Context, orderID, rawStatus string) (UpdateStatusOutput, error)

	// GetUser returns one user record. ErrUserNotFound when unknown.
	GetUser(ctx context.Context, userID string) (model.User, error)

	// DashboardStats aggregates counts and today's paid revenue. Catalog
	// counts are supplied by the caller so this domain never reaches into
	// catalog storage.
	DashboardStats(ctx context.Context, restaurants, foods int) (Stats, error)
}
