package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateRestaurantReq binds and validates the create restaurant body.
func (h *handler) processCreateRestaurantReq(c *gin.Context) (createRestaurantReq, error) {
	var req createRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateRestaurantReq binds the partial update body plus URI param.
func (h *handler) processUpdateRestaurantReq(c *gin.Context) (updateRestaurantReq, error) {
	var req updateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}

// processCreateFoodReq binds and validates the create food body.
func (h *handler) processCreateFoodReq(c *gin.Context) (createFoodReq, error) {
	var req createFoodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListFoodsReq binds the food list query parameters.
func (h *handler) processListFoodsReq(c *gin.Context) (listFoodsReq, error) {
	var req listFoodsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 50
	}
	return req, nil
}
