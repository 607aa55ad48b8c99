package http

import (
	"time"

	"food-ordering-assistant/internal/catalog"
	"food-ordering-assistant/internal/model"
)

// --- Request DTOs ---

type createRestaurantReq struct {
	Name    string `json:"name"    binding:"required,min=1,max=255"`
	Address string `json:"address" binding:"required,min=1,max=500"`
	Phone   string `json:"phone"   binding:"required,min=1,max=50"`
}

func (r createRestaurantReq) toInput() catalog.CreateRestaurantInput {
	return catalog.CreateRestaurantInput{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
	}
}

type updateRestaurantReq struct {
	ID      string `json:"-"` // populated from URI param
	Name    string `json:"name"    binding:"omitempty,min=1,max=255"`
	Address string `json:"address" binding:"omitempty,min=1,max=500"`
	Phone   string `json:"phone"   binding:"omitempty,min=1,max=50"`
}

func (r updateRestaurantReq) toInput() catalog.UpdateRestaurantInput {
	return catalog.UpdateRestaurantInput{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
	}
}

type createFoodReq struct {
	Name         string  `json:"name"         binding:"required,min=1,max=255"`
	Description  string  `json:"description"  binding:"max=1000"`
	Price        float64 `json:"price"        binding:"required,gt=0"`
	Category     string  `json:"category"     binding:"required,min=1,max=100"`
	RestaurantID string  `json:"restaurantId" binding:"required"`
}

func (r createFoodReq) toInput() catalog.CreateFoodInput {
	return catalog.CreateFoodInput{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Category:     r.Category,
		RestaurantID: r.RestaurantID,
	}
}

type listFoodsReq struct {
	RestaurantID string `form:"restaurantId"`
	Search       string `form:"search"`
	Category     string `form:"category"`
	Limit        int    `form:"limit"`
}

// --- Response DTOs ---

type restaurantResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newRestaurantResp(r model.Restaurant) restaurantResp {
	return restaurantResp{
		ID:        r.ID,
		Name:      r.Name,
		Address:   r.Address,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type restaurantDetailResp struct {
	Success    bool           `json:"success"`
	Restaurant restaurantResp `json:"restaurant"`
}

type restaurantListResp struct {
	Success     bool             `json:"success"`
	Restaurants []restaurantResp `json:"restaurants"`
}

func newRestaurantListResp(out catalog.ListRestaurantsOutput) restaurantListResp {
	restaurants := make([]restaurantResp, len(out.Restaurants))
	for i, r := range out.Restaurants {
		restaurants[i] = newRestaurantResp(r)
	}
	return restaurantListResp{Success: true, Restaurants: restaurants}
}

type foodResp struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	Category       string    `json:"category"`
	RestaurantID   string    `json:"restaurantId"`
	RestaurantName string    `json:"restaurantName,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newFoodResp(f catalog.FoodWithRestaurant) foodResp {
	return foodResp{
		ID:             f.Food.ID,
		Name:           f.Food.Name,
		Description:    f.Food.Description,
		Price:          f.Food.Price,
		Category:       f.Food.Category,
		RestaurantID:   f.Food.RestaurantID,
		RestaurantName: f.RestaurantName,
		CreatedAt:      f.Food.CreatedAt,
		UpdatedAt:      f.Food.UpdatedAt,
	}
}

type foodDetailResp struct {
	Success bool     `json:"success"`
	Food    foodResp `json:"food"`
}

type foodListResp struct {
	Success bool       `json:"success"`
	Foods   []foodResp `json:"foods"`
}

func newFoodListResp(out catalog.ListFoodsOutput) foodListResp {
	foods := make([]foodResp, len(out.Foods))
	for i, f := range out.Foods {
		foods[i] = newFoodResp(f)
	}
	return foodListResp{Success: true, Foods: foods}
}
