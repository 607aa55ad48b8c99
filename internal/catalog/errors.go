package catalog

import "errors"

var (
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrFoodNotFound        = errors.New("food not found")
	ErrDuplicateRestaurant = errors.New("restaurant already exists")
	ErrMissingFields       = errors.New("all fields are required")
)
