package model

import "time"

// Restaurant is a platform catalog entry.
type Restaurant struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Food is a menu item belonging to a restaurant.
type Food struct {
	ID           string
	Name         string
	Description  string
	Price        float64
	Category     string
	RestaurantID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
