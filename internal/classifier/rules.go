package classifier

import "regexp"

// rule is one entry of the ordered classification table. The first rule
// whose pattern matches (and whose contains-list, if any, is satisfied)
// wins, so more specific rules must precede broader ones.
type rule struct {
	pattern    *regexp.Regexp
	contains   []string // any-of substring requirement, empty = none
	intent     string
	confidence float64

	// commaIntent redirects the label when the matched utterance carries a
	// comma: a comma-separated remainder means the user supplied the details
	// inline instead of waiting for the prompt.
	commaIntent string
}

var adminRules = []rule{
	{
		pattern:     regexp.MustCompile(`(add|create|new)\s+(?:restaurant)?:?\s*.+`),
		contains:    []string{"restaurant"},
		intent:      IntentAdminAddRestaurant,
		confidence:  0.9,
		commaIntent: IntentProcessRestaurantDetails,
	},
	{
		pattern:    regexp.MustCompile(`(list|show|display|view)\s+(?:all\s+)?restaurants?`),
		intent:     IntentAdminListRestaurants,
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`(update|edit|change|modify)\s+restaurant`),
		intent:     IntentAdminUpdateRestaurant,
		confidence: 0.8,
	},
	{
		pattern:    regexp.MustCompile(`(delete|remove|take\s+down)\s+restaurant`),
		intent:     IntentAdminDeleteRestaurant,
		confidence: 0.8,
	},
	{
		pattern:     regexp.MustCompile(`(add|create|new)\s+(?:food|dish|item)?:?\s*.+`),
		contains:    []string{"food", "dish", "item"},
		intent:      IntentAdminAddFood,
		confidence:  0.9,
		commaIntent: IntentProcessFoodDetails,
	},
	{
		pattern:    regexp.MustCompile(`(list|show|display|view)\s+(?:all\s+)?(?:food|dish|item|menu)s?`),
		intent:     IntentAdminListFoods,
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`(delete|remove|take\s+down)\s+(?:food|dish|item)`),
		intent:     IntentAdminDeleteFood,
		confidence: 0.8,
	},
	{
		pattern:    regexp.MustCompile(`(list|show|display|view)\s+(?:all\s+)?orders?`),
		intent:     IntentAdminListOrders,
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`(update|change|mark)\s+.*order.*(to|as|status)`),
		intent:     IntentAdminProcessStatusUpdate,
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`(update|change)\s+.*status`),
		intent:     IntentAdminUpdateStatus,
		confidence: 0.8,
	},
	{
		pattern:    regexp.MustCompile(`stat|dashboard|summary|report`),
		intent:     IntentAdminViewStats,
		confidence: 0.7,
	},
}

var customerRules = []rule{
	{
		pattern:    regexp.MustCompile(`(find|search|look.*for|show.*me|want|get|order).*(pizza|burger|pasta|sushi|salad|rice|noodles|chicken|biryani|dosa|idli)`),
		intent:     IntentCustomerSearchFoodName,
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`(find|search|show|want|get).*(italian|chinese|mexican|indian|japanese|fast food|asian|continental|south indian|north indian)`),
		intent:     IntentCustomerSearchFoodCategory,
		confidence: 0.8,
	},
	{
		pattern:    regexp.MustCompile(`(add|put).*cart`),
		intent:     IntentCustomerAddToCart,
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`(view|show|see|my).*cart`),
		intent:     IntentCustomerViewCart,
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`checkout|place.*order|proceed.*payment|buy.*now|complete.*order`),
		intent:     IntentCustomerPlaceOrder,
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`order.*history|past.*orders|previous.*orders|my.*orders|order.*list`),
		intent:     IntentCustomerOrderHistory,
		confidence: 0.8,
	},
	{
		pattern:    regexp.MustCompile(`(track|where.*is|status|update).*order`),
		intent:     IntentCustomerTrackOrder,
		confidence: 0.8,
	},
	{
		pattern:    regexp.MustCompile(`(list|show|view|see).*restaurants?`),
		intent:     IntentCustomerListRestaurants,
		confidence: 0.8,
	},
	{
		pattern:    regexp.MustCompile(`help|support|what.*can.*you.*do|how.*to`),
		intent:     IntentCustomerHelp,
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`recommend|suggest|what.*should.*i.*order|best`),
		intent:     IntentCustomerRecommendFood,
		confidence: 0.8,
	},
	{
		pattern:    regexp.MustCompile(`price|cost|how.*much|expensive`),
		intent:     IntentCustomerAskPrice,
		confidence: 0.7,
	},
	{
		pattern:    regexp.MustCompile(`(remove|delete|clear).*cart`),
		intent:     IntentCustomerClearCart,
		confidence: 0.8,
	},
}
