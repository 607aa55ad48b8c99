package usecase

import (
	"context"
	"fmt"

	"food-ordering-assistant/internal/classifier"
	"food-ordering-assistant/internal/model"
)

// turnState carries the per-turn inputs a handler may act on.
type turnState struct {
	Message string
	UserID  string
	Role    model.Role
}

type handlerFunc func(ctx context.Context, turn *turnState) (string, error)

// buildRouter maps every classifiable intent label to its handler and panics
// at construction if any label is left unrouted. A missing handler is a
// programming error, not a runtime condition.
func (uc *implUseCase) buildRouter() map[string]handlerFunc {
	router := map[string]handlerFunc{
		classifier.IntentAdminAddRestaurant:       uc.handleAdminAddRestaurant,
		classifier.IntentProcessRestaurantDetails: uc.handleProcessRestaurantDetails,
		classifier.IntentAdminListRestaurants:     uc.handleAdminListRestaurants,
		classifier.IntentAdminUpdateRestaurant:    uc.handleAdminHelp,
		classifier.IntentAdminDeleteRestaurant:    uc.handleAdminDeleteRestaurant,
		classifier.IntentAdminAddFood:             uc.handleAdminAddFood,
		classifier.IntentProcessFoodDetails:       uc.handleProcessFoodDetails,
		classifier.IntentAdminListFoods:           uc.handleAdminListFoods,
		classifier.IntentAdminDeleteFood:          uc.handleAdminDeleteFood,
		classifier.IntentAdminListOrders:          uc.handleAdminListOrders,
		classifier.IntentAdminUpdateStatus:        uc.handleAdminUpdateStatus,
		classifier.IntentAdminProcessStatusUpdate: uc.handleAdminProcessStatusUpdate,
		classifier.IntentAdminViewStats:           uc.handleAdminViewStats,

		classifier.IntentCustomerSearchFoodName:     uc.handleCustomerSearchFoodName,
		classifier.IntentCustomerSearchFoodCategory: uc.handleCustomerSearchFoodCategory,
		classifier.IntentCustomerAddToCart:          uc.handleCustomerAddToCart,
		classifier.IntentCustomerViewCart:           uc.handleCustomerViewCart,
		classifier.IntentCustomerClearCart:          uc.handleCustomerClearCart,
		classifier.IntentCustomerPlaceOrder:         uc.handleCustomerPlaceOrder,
		classifier.IntentCustomerOrderHistory:       uc.handleCustomerOrderHistory,
		classifier.IntentCustomerTrackOrder:         uc.handleCustomerTrackOrder,
		classifier.IntentCustomerListRestaurants:    uc.handleCustomerListRestaurants,
		classifier.IntentCustomerRecommendFood:      uc.handleCustomerRecommendFood,
		classifier.IntentCustomerAskPrice:           uc.handleCustomerAskPrice,
		classifier.IntentCustomerHelp:               uc.handleCustomerHelp,

		classifier.IntentFallback: uc.handleFallback,
	}

	for _, intent := range classifier.AdminIntents() {
		if _, ok := router[intent]; !ok {
			panic(fmt.Sprintf("chat router: unrouted admin intent %q", intent))
		}
	}
	for _, intent := range classifier.CustomerIntents() {
		if _, ok := router[intent]; !ok {
			panic(fmt.Sprintf("chat router: unrouted customer intent %q", intent))
		}
	}
	return router
}

// handleFallback answers by role: admins get the command menu, customers a
// greeting with pointers.
func (uc implUseCase) handleFallback(ctx context.Context, turn *turnState) (string, error) {
	if turn.Role == model.RoleAdmin {
		return uc.handleAdminHelp(ctx, turn)
	}
	return "👋 Hi! I can help you find food, track orders and more.\n\nTry:\n• \"search for pizza\"\n• \"show my cart\"\n• \"track my order\"\n• \"recommend something\"\n\nType \"help\" to see everything I can do!", nil
}
