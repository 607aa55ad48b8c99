package classifier

// Classification sources, reported back to the client so resolution is
// auditable per turn.
const (
	SourcePattern = "pattern"
	SourceModel   = "model"
	SourceContext = "context"
)

// Intent labels form a closed, role-partitioned vocabulary. Labels carry the
// role prefix of the population they serve; unprefixed labels are shared.
const (
	IntentFallback = "fallback"

	// Admin: restaurant management
	IntentAdminAddRestaurant    = "admin_add_restaurant"
	IntentAdminListRestaurants  = "admin_list_restaurants"
	IntentAdminUpdateRestaurant = "admin_update_restaurant"
	IntentAdminDeleteRestaurant = "admin_delete_restaurant"

	// Admin: food management
	IntentAdminAddFood    = "admin_add_food"
	IntentAdminListFoods  = "admin_list_foods"
	IntentAdminDeleteFood = "admin_delete_food"

	// Admin: order management and reporting
	IntentAdminListOrders          = "admin_list_orders"
	IntentAdminUpdateStatus        = "admin_update_status"
	IntentAdminProcessStatusUpdate = "admin_process_status_update"
	IntentAdminViewStats           = "admin_view_stats"

	// Slot-filling continuations (shared, no role prefix)
	IntentProcessRestaurantDetails = "process_restaurant_details"
	IntentProcessFoodDetails       = "process_food_details"

	// Customer
	IntentCustomerSearchFoodName     = "customer_search_food_name"
	IntentCustomerSearchFoodCategory = "customer_search_food_category"
	IntentCustomerAddToCart          = "customer_add_to_cart"
	IntentCustomerViewCart           = "customer_view_cart"
	IntentCustomerPlaceOrder         = "customer_place_order"
	IntentCustomerOrderHistory       = "customer_order_history"
	IntentCustomerTrackOrder         = "customer_track_order"
	IntentCustomerListRestaurants    = "customer_list_restaurants"
	IntentCustomerHelp               = "customer_help"
	IntentCustomerRecommendFood      = "customer_recommend_food"
	IntentCustomerAskPrice           = "customer_ask_price"
	IntentCustomerClearCart          = "customer_clear_cart"
)

// FallbackConfidence is deliberately non-zero so downstream logic can treat
// an unresolved utterance as low-but-not-absent confidence.
const FallbackConfidence = 0.7

// ContinuationConfidence is assigned when conversation position, not the
// utterance itself, determines the intent.
const ContinuationConfidence = 0.9

// Resolution is the outcome of classifying one utterance.
type Resolution struct {
	Intent     string
	Confidence float64
	Source     string
}

// AdminIntents lists every admin-reachable label, in rule order.
func AdminIntents() []string {
	return []string{
		IntentAdminAddRestaurant,
		IntentAdminListRestaurants,
		IntentAdminUpdateRestaurant,
		IntentAdminDeleteRestaurant,
		IntentAdminAddFood,
		IntentAdminListFoods,
		IntentAdminDeleteFood,
		IntentAdminListOrders,
		IntentAdminProcessStatusUpdate,
		IntentAdminUpdateStatus,
		IntentAdminViewStats,
		IntentProcessRestaurantDetails,
		IntentProcessFoodDetails,
	}
}

// CustomerIntents lists every customer-reachable label, in rule order.
func CustomerIntents() []string {
	return []string{
		IntentCustomerSearchFoodName,
		IntentCustomerSearchFoodCategory,
		IntentCustomerAddToCart,
		IntentCustomerViewCart,
		IntentCustomerPlaceOrder,
		IntentCustomerOrderHistory,
		IntentCustomerTrackOrder,
		IntentCustomerListRestaurants,
		IntentCustomerHelp,
		IntentCustomerRecommendFood,
		IntentCustomerAskPrice,
		IntentCustomerClearCart,
	}
}
