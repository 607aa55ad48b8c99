package repository

import "food-ordering-assistant/internal/model"

// ListOrdersOptions holds filter parameters for listing orders, newest
// first. Statuses, when non-empty, restricts to the given states.
type ListOrdersOptions struct {
	UserID   string
	Statuses []model.OrderStatus
	Limit    int
}
