package repository

// CreateRestaurantOptions holds parameters for inserting a Restaurant.
type CreateRestaurantOptions struct {
	Name    string
	Address string
	Phone   string
}

// GetOneRestaurantOptions holds filter parameters for a single Restaurant.
// Name is matched case-insensitively as a substring.
type GetOneRestaurantOptions struct {
	ID   string
	Name string
}

// UpdateRestaurantOptions holds parameters for updating a Restaurant.
// Empty fields are left unchanged.
type UpdateRestaurantOptions struct {
	ID      string
	Name    string
	Address string
	Phone   string
}

// CreateFoodOptions holds parameters for inserting a Food.
type CreateFoodOptions struct {
	Name         string
	Description  string
	Price        float64
	Category     string
	RestaurantID string
}

// GetOneFoodOptions holds filter parameters for a single Food. Name is
// matched case-insensitively as a substring.
type GetOneFoodOptions struct {
	ID   string
	Name string
}

// ListFoodsOptions holds filter parameters for listing Foods. Name and
// Category are case-insensitive substring matches; OrderByPrice sorts
// ascending by price.
type ListFoodsOptions struct {
	Name         string
	Category     string
	RestaurantID string
	OrderByPrice bool
	Limit        int
}
