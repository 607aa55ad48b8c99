package catalog

import "food-ordering-assistant/internal/model"

// --- UseCase Inputs ---

type CreateRestaurantInput struct {
	Name    string
	Address string
	Phone   string
}

type UpdateRestaurantInput struct {
	ID      string
	Name    string
	Address string
	Phone   string
}

type CreateFoodInput struct {
	Name         string
	Description  string
	Price        float64
	Category     string
	RestaurantID string
}

// --- UseCase Outputs ---

type CreateRestaurantOutput struct {
	Restaurant model.Restaurant
}

type ListRestaurantsOutput struct {
	Restaurants []model.Restaurant
}

type DetailRestaurantOutput struct {
	Restaurant model.Restaurant
}

type UpdateRestaurantOutput struct {
	Restaurant model.Restaurant
}

type CreateFoodOutput struct {
	Food model.Food
}

// FoodWithRestaurant pairs a food with its resolved restaurant name for
// display.
type FoodWithRestaurant struct {
	Food           model.Food
	RestaurantName string
}

type ListFoodsOutput struct {
	Foods []FoodWithRestaurant
}
