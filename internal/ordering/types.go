package ordering

import "food-ordering-assistant/internal/model"

// --- UseCase Outputs ---

type ListOrdersOutput struct {
	Orders []model.Order
}

type UpdateStatusOutput struct {
	Order model.Order
}

// Stats is the operator dashboard summary.
type Stats struct {
	Restaurants  int
	Foods        int
	Orders       int
	Users        int
	TodayRevenue float64
}
