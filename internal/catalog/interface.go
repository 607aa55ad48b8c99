package catalog

import (
	"context"

	"food-ordering-assistant/internal/model"
)

// UseCase manages restaurant and food records.
type UseCase interface {
	// Restaurants
	CreateRestaurant(ctx context.Context, input CreateRestaurantInput) (CreateRestaurantOutput, error)
	ListRestaurants(ctx context.Context) (ListRestaurantsOutput, error)
	DetailRestaurant(ctx context.Context, id string) (DetailRestaurantOutput, error)
	UpdateRestaurant(ctx context.Context, input UpdateRestaurantInput) (UpdateRestaurantOutput, error)
	// DeleteRestaurant removes a restaurant and all of its foods.
	DeleteRestaurant(ctx context.Context, id string) error

	// FindRestaurantByName resolves a case-insensitive partial name match.
	// Returns a zero-value Restaurant when nothing matches.
	FindRestaurantByName(ctx context.Context, name string) (model.Restaurant, error)

	// Foods
	CreateFood(ctx context.Context, input CreateFoodInput) (CreateFoodOutput, error)
	ListFoods(ctx context.Context) (ListFoodsOutput, error)
	ListFoodsByRestaurant(ctx context.Context, restaurantID string) (ListFoodsOutput, error)
	SearchFoodsByName(ctx context.Context, term string, limit int) (ListFoodsOutput, error)
	SearchFoodsByCategory(ctx context.Context, category string, limit int) (ListFoodsOutput, error)
	// CheapestFoods returns up to limit foods ordered by ascending price.
	CheapestFoods(ctx context.Context, limit int) (ListFoodsOutput, error)
	FindFoodByName(ctx context.Context, name string) (FoodWithRestaurant, error)
	FoodsByIDs(ctx context.Context, ids []string) ([]model.Food, error)
	DeleteFood(ctx context.Context, id string) error

	// Counts for reporting
	CountRestaurants(ctx context.Context) (int, error)
	CountFoods(ctx context.Context) (int, error)
}
