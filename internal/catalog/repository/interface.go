package repository

import (
	"context"

	"food-ordering-assistant/internal/model"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	RestaurantRepository
	FoodRepository
}

// RestaurantRepository defines data access for Restaurant records.
type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, opt CreateRestaurantOptions) (model.Restaurant, error)
	// GetOneRestaurant applies non-empty fields as AND conditions; Name is a
	// case-insensitive partial match. Zero-value when not found.
	GetOneRestaurant(ctx context.Context, opt GetOneRestaurantOptions) (model.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)
	UpdateRestaurant(ctx context.Context, opt UpdateRestaurantOptions) (model.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id string) error
	CountRestaurants(ctx context.Context) (int, error)
}

// FoodRepository defines data access for Food records.
type FoodRepository interface {
	CreateFood(ctx context.Context, opt CreateFoodOptions) (model.Food, error)
	GetOneFood(ctx context.Context, opt GetOneFoodOptions) (model.Food, error)
	ListFoods(ctx context.Context, opt ListFoodsOptions) ([]model.Food, error)
	ListFoodsByIDs(ctx context.Context, ids []string) ([]model.Food, error)
	DeleteFood(ctx context.Context, id string) error
	DeleteFoodsByRestaurant(ctx context.Context, restaurantID string) error
	CountFoods(ctx context.Context) (int, error)
}
