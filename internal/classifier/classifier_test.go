package classifier_test

import (
	"testing"

	"food-ordering-assistant/internal/classifier"
	"food-ordering-assistant/internal/model"
)

func TestClassifyAdmin(t *testing.T) {
	cases := []struct {
		name    string
		message string
		intent  string
	}{
		{"Add Restaurant Prompt", "add restaurant Pizza Palace", classifier.IntentAdminAddRestaurant},
		{"Add Restaurant Inline Details", "add restaurant: Pizza Palace, 123 Main St, 555-0123", classifier.IntentProcessRestaurantDetails},
		{"List Restaurants", "show all restaurants", classifier.IntentAdminListRestaurants},
		{"Update Restaurant", "edit restaurant Arya Bhavan", classifier.IntentAdminUpdateRestaurant},
		{"Delete Restaurant", "take down restaurant Arya Bhavan", classifier.IntentAdminDeleteRestaurant},
		{"Add Food Prompt", "add food item", classifier.IntentAdminAddFood},
		{"Add Food Inline Details", "add food: Egg Rice, fried rice, 250, Rice, Arya Bhavan", classifier.IntentProcessFoodDetails},
		{"List Foods", "list all dishes", classifier.IntentAdminListFoods},
		{"Delete Food", "remove dish Egg Rice", classifier.IntentAdminDeleteFood},
		{"List Orders", "view all orders", classifier.IntentAdminListOrders},
		{"Process Status Update", "mark order abc123 as completed", classifier.IntentAdminProcessStatusUpdate},
		{"Update Status Prompt", "change the status", classifier.IntentAdminUpdateStatus},
		{"View Stats", "show me the dashboard", classifier.IntentAdminViewStats},
		{"Fallback", "hello there", classifier.IntentFallback},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := classifier.Classify(tc.message, model.RoleAdmin)
			if res.Intent != tc.intent {
				t.Errorf("Classify(%q) = %q, want %q", tc.message, res.Intent, tc.intent)
			}
			if res.Source != classifier.SourcePattern {
				t.Errorf("expected pattern source, got %q", res.Source)
			}
			if res.Confidence < 0 || res.Confidence > 1 {
				t.Errorf("confidence out of range: %v", res.Confidence)
			}
		})
	}
}

func TestClassifyCustomer(t *testing.T) {
	cases := []struct {
		name    string
		message string
		intent  string
	}{
		{"Search Food By Name", "find me a pizza", classifier.IntentCustomerSearchFoodName},
		{"Search Food By Category", "want some italian tonight", classifier.IntentCustomerSearchFoodCategory},
		{"Add To Cart", "put this in my cart", classifier.IntentCustomerAddToCart},
		{"Place Order", "proceed to payment", classifier.IntentCustomerPlaceOrder},
		{"Order History", "show my past orders", classifier.IntentCustomerOrderHistory},
		{"Track Order", "where is my order", classifier.IntentCustomerTrackOrder},
		{"List Restaurants", "list restaurants", classifier.IntentCustomerListRestaurants},
		{"Help", "what can you do", classifier.IntentCustomerHelp},
		{"Recommend", "what should i order", classifier.IntentCustomerRecommendFood},
		{"Price", "how much is a burger", classifier.IntentCustomerAskPrice},
		{"Price With Search Verb", "get me a burger", classifier.IntentCustomerSearchFoodName},
		{"Clear Cart", "clear the cart", classifier.IntentCustomerClearCart},
		{"Fallback", "blue skies", classifier.IntentFallback},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := classifier.Classify(tc.message, model.RoleCustomer)
			if res.Intent != tc.intent {
				t.Errorf("Classify(%q) = %q, want %q", tc.message, res.Intent, tc.intent)
			}
		})
	}
}

func TestClassifyFallbackConfidence(t *testing.T) {
	res := classifier.Classify("ramblings with no shape", model.RoleAdmin)
	if res.Intent != classifier.IntentFallback {
		t.Fatalf("expected fallback, got %q", res.Intent)
	}
	if res.Confidence != classifier.FallbackConfidence {
		t.Errorf("fallback confidence = %v, want %v", res.Confidence, classifier.FallbackConfidence)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	first := classifier.Classify("Add restaurant somewhere", model.RoleAdmin)
	second := classifier.Classify("Add restaurant somewhere", model.RoleAdmin)
	if first != second {
		t.Errorf("classification not idempotent: %+v vs %+v", first, second)
	}
}

func TestResolveContext(t *testing.T) {
	t.Run("Restaurant Continuation With Comma", func(t *testing.T) {
		res, ok := classifier.ResolveContext(
			"Pizza Palace, 123 Main St, 555-0123",
			model.RoleAdmin,
			[]string{classifier.IntentAdminAddRestaurant},
		)
		if !ok {
			t.Fatal("expected continuation")
		}
		if res.Intent != classifier.IntentProcessRestaurantDetails {
			t.Errorf("intent = %q, want process_restaurant_details", res.Intent)
		}
		if res.Confidence != classifier.ContinuationConfidence {
			t.Errorf("confidence = %v, want %v", res.Confidence, classifier.ContinuationConfidence)
		}
		if res.Source != classifier.SourceContext {
			t.Errorf("source = %q, want context", res.Source)
		}
	})

	t.Run("Food Continuation With Digit", func(t *testing.T) {
		res, ok := classifier.ResolveContext(
			"Egg Rice fried rice 250 Rice Arya Bhavan",
			model.RoleAdmin,
			[]string{classifier.IntentAdminListFoods, classifier.IntentAdminAddFood},
		)
		if !ok {
			t.Fatal("expected continuation")
		}
		if res.Intent != classifier.IntentProcessFoodDetails {
			t.Errorf("intent = %q, want process_food_details", res.Intent)
		}
	})

	t.Run("Unqualified Prior Label Variant", func(t *testing.T) {
		_, ok := classifier.ResolveContext("a, b, c", model.RoleAdmin, []string{"add_restaurant"})
		if !ok {
			t.Error("expected continuation for unqualified prior label")
		}
	})

	t.Run("No Comma No Digit", func(t *testing.T) {
		_, ok := classifier.ResolveContext(
			"just words",
			model.RoleAdmin,
			[]string{classifier.IntentAdminAddRestaurant},
		)
		if ok {
			t.Error("expected no continuation without comma or digit")
		}
	})

	t.Run("Wrong Prior Intent", func(t *testing.T) {
		_, ok := classifier.ResolveContext(
			"a, b, c",
			model.RoleAdmin,
			[]string{classifier.IntentAdminListRestaurants},
		)
		if ok {
			t.Error("expected no continuation after a non-prompt intent")
		}
	})

	t.Run("Empty History", func(t *testing.T) {
		_, ok := classifier.ResolveContext("a, b, c", model.RoleAdmin, nil)
		if ok {
			t.Error("expected no continuation with empty history")
		}
	})
}

func TestAllowedForRole(t *testing.T) {
	cases := []struct {
		intent string
		role   model.Role
		want   bool
	}{
		{classifier.IntentAdminListOrders, model.RoleAdmin, true},
		{classifier.IntentAdminListOrders, model.RoleCustomer, false},
		{classifier.IntentCustomerViewCart, model.RoleCustomer, true},
		{classifier.IntentCustomerViewCart, model.RoleAdmin, false},
		{classifier.IntentProcessFoodDetails, model.RoleAdmin, true},
		{classifier.IntentProcessFoodDetails, model.RoleCustomer, true},
		{classifier.IntentFallback, model.RoleCustomer, true},
	}
	for _, tc := range cases {
		if got := classifier.AllowedForRole(tc.intent, tc.role); got != tc.want {
			t.Errorf("AllowedForRole(%q, %q) = %v, want %v", tc.intent, tc.role, got, tc.want)
		}
	}
}
