package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"food-ordering-assistant/internal/catalog"
	"food-ordering-assistant/pkg/response"
)

// CreateRestaurant godoc
// @Summary     Create a restaurant
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body createRestaurantReq true "Restaurant data"
// @Success     200 {object} restaurantDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/restaurants [POST]
func (h *handler) CreateRestaurant(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateRestaurantReq(c)
	if err != nil {
		response.BadRequest(c, "name, address and phone are required")
		return
	}

	output, err := h.uc.CreateRestaurant(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, catalog.ErrDuplicateRestaurant) {
			response.Conflict(c, catalog.ErrDuplicateRestaurant.Error())
			return
		}
		if errors.Is(err, catalog.ErrMissingFields) {
			response.BadRequest(c, catalog.ErrMissingFields.Error())
			return
		}
		h.l.Errorf(ctx, "uc.CreateRestaurant: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, restaurantDetailResp{Success: true, Restaurant: newRestaurantResp(output.Restaurant)})
}

// ListRestaurants godoc
// @Summary     List restaurants
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} restaurantListResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/restaurants [GET]
func (h *handler) ListRestaurants(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListRestaurants(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRestaurants: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newRestaurantListResp(output))
}

// DetailRestaurant godoc
// @Summary     Get one restaurant
// @Tags        Catalog
// @Produce     json
// @Param       id path string true "Restaurant ID"
// @Success     200 {object} restaurantDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/restaurants/{id} [GET]
func (h *handler) DetailRestaurant(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.DetailRestaurant(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrRestaurantNotFound) {
			response.NotFound(c, catalog.ErrRestaurantNotFound.Error())
			return
		}
		h.l.Errorf(ctx, "uc.DetailRestaurant: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, restaurantDetailResp{Success: true, Restaurant: newRestaurantResp(output.Restaurant)})
}

// UpdateRestaurant godoc
// @Summary     Update a restaurant
// @Description Partial update; absent fields keep their current value.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id   path string              true "Restaurant ID"
// @Param       body body updateRestaurantReq true "Fields to update"
// @Success     200 {object} restaurantDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/restaurants/{id} [PUT]
func (h *handler) UpdateRestaurant(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateRestaurantReq(c)
	if err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	output, err := h.uc.UpdateRestaurant(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, catalog.ErrRestaurantNotFound) {
			response.NotFound(c, catalog.ErrRestaurantNotFound.Error())
			return
		}
		h.l.Errorf(ctx, "uc.UpdateRestaurant: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, restaurantDetailResp{Success: true, Restaurant: newRestaurantResp(output.Restaurant)})
}

// DeleteRestaurant godoc
// @Summary     Delete a restaurant and its foods
// @Tags        Catalog
// @Produce     json
// @Param       id path string true "Restaurant ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/restaurants/{id} [DELETE]
func (h *handler) DeleteRestaurant(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteRestaurant(ctx, c.Param("id")); err != nil {
		if errors.Is(err, catalog.ErrRestaurantNotFound) {
			response.NotFound(c, catalog.ErrRestaurantNotFound.Error())
			return
		}
		h.l.Errorf(ctx, "uc.DeleteRestaurant: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, response.Resp{Success: true, Message: "restaurant deleted"})
}

// CreateFood godoc
// @Summary     Create a food
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body createFoodReq true "Food data"
// @Success     200 {object} foodDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Restaurant Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/foods [POST]
func (h *handler) CreateFood(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateFoodReq(c)
	if err != nil {
		response.BadRequest(c, "name, price, category and restaurantId are required")
		return
	}

	output, err := h.uc.CreateFood(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, catalog.ErrRestaurantNotFound) {
			response.NotFound(c, catalog.ErrRestaurantNotFound.Error())
			return
		}
		if errors.Is(err, catalog.ErrMissingFields) {
			response.BadRequest(c, catalog.ErrMissingFields.Error())
			return
		}
		h.l.Errorf(ctx, "uc.CreateFood: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, foodDetailResp{Success: true, Food: foodResp{
		ID:           output.Food.ID,
		Name:         output.Food.Name,
		Description:  output.Food.Description,
		Price:        output.Food.Price,
		Category:     output.Food.Category,
		RestaurantID: output.Food.RestaurantID,
		CreatedAt:    output.Food.CreatedAt,
		UpdatedAt:    output.Food.UpdatedAt,
	}})
}

// ListFoods godoc
// @Summary     List foods
// @Description Optional filters: restaurantId, search (name substring), category.
// @Tags        Catalog
// @Produce     json
// @Param       restaurantId query string false "Filter by restaurant"
// @Param       search       query string false "Name substring filter"
// @Param       category     query string false "Category filter"
// @Param       limit        query int    false "Page size (default 50)"
// @Success     200 {object} foodListResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/foods [GET]
func (h *handler) ListFoods(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListFoodsReq(c)
	if err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	var output catalog.ListFoodsOutput
	switch {
	case req.Search != "":
		output, err = h.uc.SearchFoodsByName(ctx, req.Search, req.Limit)
	case req.Category != "":
		output, err = h.uc.SearchFoodsByCategory(ctx, req.Category, req.Limit)
	case req.RestaurantID != "":
		output, err = h.uc.ListFoodsByRestaurant(ctx, req.RestaurantID)
	default:
		output, err = h.uc.ListFoods(ctx)
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.ListFoods: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newFoodListResp(output))
}

// DeleteFood godoc
// @Summary     Delete a food
// @Tags        Catalog
// @Produce     json
// @Param       id path string true "Food ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/foods/{id} [DELETE]
func (h *handler) DeleteFood(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteFood(ctx, c.Param("id")); err != nil {
		if errors.Is(err, catalog.ErrFoodNotFound) {
			response.NotFound(c, catalog.ErrFoodNotFound.Error())
			return
		}
		h.l.Errorf(ctx, "uc.DeleteFood: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, response.Resp{Success: true, Message: "food deleted"})
}
