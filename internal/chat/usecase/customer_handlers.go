package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"food-ordering-assistant/internal/model"
	"food-ordering-assistant/internal/ordering"
)

const (
	searchResultLimit = 8
	recommendLimit    = 5
	historyOrderLimit = 5
	trackedOrderLimit = 3
)

func (uc implUseCase) handleCustomerHelp(ctx context.Context, turn *turnState) (string, error) {
	return "🤖 Here's what I can do:\n\n" +
		"🔍 \"search for pizza\" - find foods by name\n" +
		"🏷️ \"show me desserts\" - browse by category\n" +
		"🛒 \"show my cart\" - see what's in your cart\n" +
		"📦 \"my orders\" - your order history\n" +
		"🚚 \"track my order\" - where your food is\n" +
		"🏪 \"list restaurants\" - who we deliver from\n" +
		"⭐ \"recommend something\" - budget-friendly picks", nil
}

func (uc implUseCase) handleCustomerSearchFoodName(ctx context.Context, turn *turnState) (string, error) {
	term := extractSearchTerm(turn.Message)
	if term == "" {
		return "🔍 What should I look for? Try: search for pizza", nil
	}

	out, err := uc.catalogUC.SearchFoodsByName(ctx, term, searchResultLimit)
	if err != nil {
		return "", err
	}
	if len(out.Foods) == 0 {
		return uc.noResultsReply(ctx, term)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Found %d result(s) for \"%s\":\n\n", len(out.Foods), term)
	for _, f := range out.Foods {
		b.WriteString(formatFoodLine(f) + "\n")
	}
	b.WriteString("\nAdd any of these from the menu page! 🛒")
	return b.String(), nil
}

func (uc implUseCase) handleCustomerSearchFoodCategory(ctx context.Context, turn *turnState) (string, error) {
	category := extractCategory(turn.Message)
	if category == "" {
		return "🏷️ Which category? Try: show me desserts", nil
	}

	out, err := uc.catalogUC.SearchFoodsByCategory(ctx, category, searchResultLimit)
	if err != nil {
		return "", err
	}
	if len(out.Foods) == 0 {
		return uc.noResultsReply(ctx, category)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏷️ %d item(s) in \"%s\":\n\n", len(out.Foods), category)
	for _, f := range out.Foods {
		b.WriteString(formatFoodLine(f) + "\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// noResultsReply suggests a few cheap picks when a search comes up empty.
func (uc implUseCase) noResultsReply(ctx context.Context, term string) (string, error) {
	out, err := uc.catalogUC.CheapestFoods(ctx, recommendLimit)
	if err != nil {
		return "", err
	}
	if len(out.Foods) == 0 {
		return fmt.Sprintf("😕 No results for \"%s\", and the menu is empty right now. Check back soon!", term), nil
	}
	lines := make([]string, len(out.Foods))
	for i, f := range out.Foods {
		lines[i] = formatFoodLine(f)
	}
	return fmt.Sprintf("😕 No results for \"%s\". How about one of these?\n\n%s", term, strings.Join(lines, "\n")), nil
}

func (uc implUseCase) handleCustomerViewCart(ctx context.Context, turn *turnState) (string, error) {
	user, err := uc.orderingUC.GetUser(ctx, turn.UserID)
	if errors.Is(err, ordering.ErrUserNotFound) {
		return "😕 I couldn't find your account. Please log in again.", nil
	}
	if err != nil {
		return "", err
	}
	if len(user.Cart) == 0 {
		return "🛒 Your cart is empty. Search for something tasty to fill it up!", nil
	}

	ids := make([]string, 0, len(user.Cart))
	for id, qty := range user.Cart {
		if qty > 0 {
			ids = append(ids, id)
		}
	}
	foods, err := uc.catalogUC.FoodsByIDs(ctx, ids)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("🛒 Your cart:\n\n")
	total := 0.0
	count := 0
	for _, f := range foods {
		qty := user.Cart[f.ID]
		if qty <= 0 {
			continue
		}
		line := f.Price * float64(qty)
		total += line
		count += qty
		fmt.Fprintf(&b, "• %s x%d - $%.2f\n", f.Name, qty, line)
	}
	if count == 0 {
		return "🛒 Your cart is empty. Search for something tasty to fill it up!", nil
	}
	fmt.Fprintf(&b, "\n%d item(s), total $%.2f. Head to checkout when you're ready! 💳", count, total)
	return b.String(), nil
}

func (uc implUseCase) handleCustomerAddToCart(ctx context.Context, turn *turnState) (string, error) {
	return "🛒 To add items, open the menu page, pick what you like and tap the + button. " +
		"I can help you find things - try: search for pizza", nil
}

func (uc implUseCase) handleCustomerClearCart(ctx context.Context, turn *turnState) (string, error) {
	return "🧹 To clear your cart, open the cart page and remove the items there. " +
		"Want me to show what's in it? Say: show my cart", nil
}

func (uc implUseCase) handleCustomerPlaceOrder(ctx context.Context, turn *turnState) (string, error) {
	return "💳 To place your order, open your cart and tap \"Proceed to checkout\". " +
		"Say \"show my cart\" if you want to review it first.", nil
}

func (uc implUseCase) handleCustomerOrderHistory(ctx context.Context, turn *turnState) (string, error) {
	out, err := uc.orderingUC.ListByUser(ctx, turn.UserID, historyOrderLimit)
	if err != nil {
		return "", err
	}
	if len(out.Orders) == 0 {
		return "📦 You haven't placed any orders yet. Let's fix that - try: recommend something", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📦 Your last %d order(s):\n\n", len(out.Orders))
	for _, o := range out.Orders {
		b.WriteString(formatOrderLine(o) + "\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (uc implUseCase) handleCustomerTrackOrder(ctx context.Context, turn *turnState) (string, error) {
	active, err := uc.orderingUC.ListActiveByUser(ctx, turn.UserID, trackedOrderLimit)
	if err != nil {
		return "", err
	}
	if len(active.Orders) > 0 {
		var b strings.Builder
		b.WriteString("🚚 Your active order(s):\n\n")
		for _, o := range active.Orders {
			emoji := "👨‍🍳"
			if o.Status == model.StatusOutForDelivery {
				emoji = "🛵"
			}
			fmt.Fprintf(&b, "%s #%s - %s ($%.2f)\n", emoji, shortOrderID(o.ID), o.Status, o.Amount)
		}
		return strings.TrimRight(b.String(), "\n"), nil
	}

	recent, err := uc.orderingUC.ListByUser(ctx, turn.UserID, 1)
	if err != nil {
		return "", err
	}
	if len(recent.Orders) == 0 {
		return "📦 You have no orders to track yet.", nil
	}
	last := recent.Orders[0]
	if last.Status == model.StatusDelivered {
		return fmt.Sprintf("✅ Your latest order #%s was delivered. Enjoy! 🎉", shortOrderID(last.ID)), nil
	}
	return fmt.Sprintf("📦 Your latest order #%s is \"%s\".", shortOrderID(last.ID), last.Status), nil
}

func (uc implUseCase) handleCustomerListRestaurants(ctx context.Context, turn *turnState) (string, error) {
	out, err := uc.catalogUC.ListRestaurants(ctx)
	if err != nil {
		return "", err
	}
	if len(out.Restaurants) == 0 {
		return "🏪 No restaurants are live yet. Check back soon!", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏪 We deliver from %d restaurant(s):\n\n", len(out.Restaurants))
	for _, r := range out.Restaurants {
		fmt.Fprintf(&b, "• %s - %s\n", r.Name, r.Address)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (uc implUseCase) handleCustomerRecommendFood(ctx context.Context, turn *turnState) (string, error) {
	out, err := uc.catalogUC.CheapestFoods(ctx, recommendLimit)
	if err != nil {
		return "", err
	}
	if len(out.Foods) == 0 {
		return "😕 The menu is empty right now. Check back soon!", nil
	}

	lines := make([]string, len(out.Foods))
	for i, f := range out.Foods {
		lines[i] = formatFoodLine(f)
	}
	return "⭐ Easy on the wallet, big on taste:\n\n" + strings.Join(lines, "\n"), nil
}

func (uc implUseCase) handleCustomerAskPrice(ctx context.Context, turn *turnState) (string, error) {
	term := extractSearchTerm(turn.Message)
	if term != "" {
		out, err := uc.catalogUC.SearchFoodsByName(ctx, term, 3)
		if err != nil {
			return "", err
		}
		if len(out.Foods) > 0 {
			lines := make([]string, len(out.Foods))
			for i, f := range out.Foods {
				lines[i] = formatFoodLine(f)
			}
			return "💲 Here's what I found:\n\n" + strings.Join(lines, "\n"), nil
		}
	}
	return "💲 Prices are listed on the menu page next to each item. " +
		"Ask me about a specific dish, like: how much is the pasta", nil
}
