package http

import (
	"github.com/gin-gonic/gin"

	"food-ordering-assistant/internal/middleware"
)

// RegisterRoutes maps the catalog REST endpoints onto the router group.
// Reads are public; writes require a verified bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	restaurants := rg.Group("/restaurants")
	{
		restaurants.POST("", mw.Auth(), h.CreateRestaurant)
		restaurants.GET("", h.ListRestaurants)
		restaurants.GET("/:id", h.DetailRestaurant)
		restaurants.PUT("/:id", mw.Auth(), h.UpdateRestaurant)
		restaurants.DELETE("/:id", mw.Auth(), h.DeleteRestaurant)
	}

	foods := rg.Group("/foods")
	{
		foods.POST("", mw.Auth(), h.CreateFood)
		foods.GET("", h.ListFoods)
		foods.DELETE("/:id", mw.Auth(), h.DeleteFood)
	}
}
