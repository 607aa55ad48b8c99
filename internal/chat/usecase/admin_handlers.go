package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"food-ordering-assistant/internal/catalog"
	"food-ordering-assistant/internal/model"
)

const adminRecentOrderLimit = 10

func (uc implUseCase) handleAdminHelp(ctx context.Context, turn *turnState) (string, error) {
	return "🤖 Admin Assistant - here's what I can do:\n\n" +
		"🏪 Restaurants:\n• \"add restaurant\" then send: name, address, phone\n• \"list restaurants\"\n• \"delete restaurant <name>\"\n\n" +
		"🍔 Foods:\n• \"add food\" then send: name, description, price, category, restaurant\n• \"list foods\"\n• \"delete food <name>\"\n\n" +
		"📦 Orders:\n• \"show orders\"\n• \"update order <id> to <status>\"\n\n" +
		"📊 \"show stats\" for the dashboard summary", nil
}

func (uc implUseCase) handleAdminAddRestaurant(ctx context.Context, turn *turnState) (string, error) {
	return "🏪 Let's add a restaurant! Send me the details in one message, comma separated:\n\n" +
		"name, address, phone\n\nExample: Pizza Palace, 12 Main St, 555-0134", nil
}

func (uc implUseCase) handleProcessRestaurantDetails(ctx context.Context, turn *turnState) (string, error) {
	fields := splitDetails(turn.Message, restaurantPrefixRe)
	if len(fields) < 3 {
		return "⚠️ I need three comma-separated fields: name, address, phone.\n\n" +
			"Example: Pizza Palace, 12 Main St, 555-0134", nil
	}

	out, err := uc.catalogUC.CreateRestaurant(ctx, catalog.CreateRestaurantInput{
		Name:    fields[0],
		Address: fields[1],
		Phone:   fields[2],
	})
	if errors.Is(err, catalog.ErrDuplicateRestaurant) {
		return fmt.Sprintf("⚠️ A restaurant named \"%s\" already exists. Use a different name or update the existing one.", out.Restaurant.Name), nil
	}
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("✅ Restaurant \"%s\" added!\n\n📍 %s\n📞 %s\n\nYou can now add foods to it with \"add food\".",
		out.Restaurant.Name, out.Restaurant.Address, out.Restaurant.Phone), nil
}

func (uc implUseCase) handleAdminListRestaurants(ctx context.Context, turn *turnState) (string, error) {
	out, err := uc.catalogUC.ListRestaurants(ctx)
	if err != nil {
		return "", err
	}
	if len(out.Restaurants) == 0 {
		return "🏪 No restaurants yet. Say \"add restaurant\" to create the first one.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏪 Restaurants (%d):\n\n", len(out.Restaurants))
	for _, r := range out.Restaurants {
		fmt.Fprintf(&b, "• %s\n  📍 %s | 📞 %s\n", r.Name, r.Address, r.Phone)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (uc implUseCase) handleAdminDeleteRestaurant(ctx context.Context, turn *turnState) (string, error) {
	target := extractDeleteTarget(turn.Message, deleteRestaurantRe)
	if target == "" {
		return uc.restaurantCandidates(ctx, "🗑️ Which restaurant should I delete? Tell me like: delete restaurant Pizza Palace")
	}

	restaurant, err := uc.catalogUC.FindRestaurantByName(ctx, target)
	if err != nil {
		return "", err
	}
	if restaurant.ID == "" {
		return uc.restaurantCandidates(ctx, fmt.Sprintf("❌ I couldn't find a restaurant matching \"%s\".", target))
	}

	if err := uc.catalogUC.DeleteRestaurant(ctx, restaurant.ID); err != nil {
		return "", err
	}
	return fmt.Sprintf("🗑️ Restaurant \"%s\" and all of its foods have been deleted.", restaurant.Name), nil
}

// restaurantCandidates appends the current restaurant names to a lead-in so
// the operator can retry with an exact name.
func (uc implUseCase) restaurantCandidates(ctx context.Context, leadIn string) (string, error) {
	out, err := uc.catalogUC.ListRestaurants(ctx)
	if err != nil {
		return "", err
	}
	if len(out.Restaurants) == 0 {
		return leadIn + "\n\nThere are no restaurants yet.", nil
	}
	names := make([]string, len(out.Restaurants))
	for i, r := range out.Restaurants {
		names[i] = "• " + r.Name
	}
	return leadIn + "\n\nCurrent restaurants:\n" + strings.Join(names, "\n"), nil
}

func (uc implUseCase) handleAdminAddFood(ctx context.Context, turn *turnState) (string, error) {
	out, err := uc.catalogUC.ListRestaurants(ctx)
	if err != nil {
		return "", err
	}
	if len(out.Restaurants) == 0 {
		return "⚠️ There are no restaurants yet. Create one first with \"add restaurant\".", nil
	}

	names := make([]string, len(out.Restaurants))
	for i, r := range out.Restaurants {
		names[i] = "• " + r.Name
	}
	return "🍔 Let's add a food! Send the details in one message, comma separated:\n\n" +
		"name, description, price, category, restaurant\n\n" +
		"Example: Margherita, Classic tomato and mozzarella, 9.99, Pizza, Pizza Palace\n\n" +
		"Available restaurants:\n" + strings.Join(names, "\n"), nil
}

func (uc implUseCase) handleProcessFoodDetails(ctx context.Context, turn *turnState) (string, error) {
	fields := splitDetails(turn.Message, foodPrefixRe)
	if len(fields) < 5 {
		return "⚠️ I need five comma-separated fields: name, description, price, category, restaurant.\n\n" +
			"Example: Margherita, Classic tomato and mozzarella, 9.99, Pizza, Pizza Palace", nil
	}

	price, err := strconv.ParseFloat(strings.TrimPrefix(fields[2], "$"), 64)
	if err != nil || price <= 0 {
		return fmt.Sprintf("⚠️ \"%s\" doesn't look like a price. Use a plain number like 9.99.", fields[2]), nil
	}

	restaurant, err := uc.catalogUC.FindRestaurantByName(ctx, fields[4])
	if err != nil {
		return "", err
	}
	if restaurant.ID == "" {
		return uc.restaurantCandidates(ctx, fmt.Sprintf("❌ I couldn't find a restaurant matching \"%s\".", fields[4]))
	}

	created, err := uc.catalogUC.CreateFood(ctx, catalog.CreateFoodInput{
		Name:         fields[0],
		Description:  fields[1],
		Price:        price,
		Category:     fields[3],
		RestaurantID: restaurant.ID,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("✅ Food \"%s\" added to %s!\n\n💲 $%.2f | 🏷️ %s\n📝 %s",
		created.Food.Name, restaurant.Name, created.Food.Price, created.Food.Category, created.Food.Description), nil
}

func (uc implUseCase) handleAdminListFoods(ctx context.Context, turn *turnState) (string, error) {
	out, err := uc.catalogUC.ListFoods(ctx)
	if err != nil {
		return "", err
	}
	if len(out.Foods) == 0 {
		return "🍔 No foods yet. Say \"add food\" to create the first one.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍔 Foods (%d):\n\n", len(out.Foods))
	for _, f := range out.Foods {
		b.WriteString(formatFoodLine(f) + "\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (uc implUseCase) handleAdminDeleteFood(ctx context.Context, turn *turnState) (string, error) {
	target := extractDeleteTarget(turn.Message, deleteFoodRe)
	if target == "" {
		return "🗑️ Which food should I delete? Tell me like: delete food Margherita", nil
	}

	found, err := uc.catalogUC.FindFoodByName(ctx, target)
	if err != nil {
		return "", err
	}
	if found.Food.ID == "" {
		out, lerr := uc.catalogUC.SearchFoodsByName(ctx, target, 5)
		if lerr != nil {
			return "", lerr
		}
		if len(out.Foods) == 0 {
			return fmt.Sprintf("❌ I couldn't find a food matching \"%s\".", target), nil
		}
		lines := make([]string, len(out.Foods))
		for i, f := range out.Foods {
			lines[i] = formatFoodLine(f)
		}
		return fmt.Sprintf("❌ No exact match for \"%s\". Did you mean:\n%s", target, strings.Join(lines, "\n")), nil
	}

	if err := uc.catalogUC.DeleteFood(ctx, found.Food.ID); err != nil {
		return "", err
	}
	return fmt.Sprintf("🗑️ Food \"%s\" has been deleted.", found.Food.Name), nil
}

func (uc implUseCase) handleAdminListOrders(ctx context.Context, turn *turnState) (string, error) {
	out, err := uc.orderingUC.ListRecent(ctx, adminRecentOrderLimit)
	if err != nil {
		return "", err
	}
	if len(out.Orders) == 0 {
		return "📦 No orders yet.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📦 Recent orders (%d):\n\n", len(out.Orders))
	for _, o := range out.Orders {
		b.WriteString(formatOrderLine(o) + "\n")
	}
	b.WriteString("\nTo change one: update order <id> to <status>")
	return b.String(), nil
}

func (uc implUseCase) handleAdminUpdateStatus(ctx context.Context, turn *turnState) (string, error) {
	return fmt.Sprintf("✏️ Tell me which order and the new status, like:\n\n"+
		"update order 12345 to delivered\n\nValid statuses: %s", formatStatuses()), nil
}

func (uc implUseCase) handleAdminProcessStatusUpdate(ctx context.Context, turn *turnState) (string, error) {
	orderID, rawStatus, ok := parseStatusUpdate(turn.Message)
	if !ok {
		return uc.handleAdminUpdateStatus(ctx, turn)
	}

	status, ok := model.NormalizeOrderStatus(rawStatus)
	if !ok {
		return fmt.Sprintf("⚠️ \"%s\" isn't a status I know. Valid statuses: %s", rawStatus, formatStatuses()), nil
	}

	order, err := uc.matchOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order.ID == "" {
		out, lerr := uc.orderingUC.ListRecent(ctx, 5)
		if lerr != nil {
			return "", lerr
		}
		if len(out.Orders) == 0 {
			return fmt.Sprintf("❌ I couldn't find order \"%s\", and there are no orders yet.", orderID), nil
		}
		lines := make([]string, len(out.Orders))
		for i, o := range out.Orders {
			lines[i] = formatOrderLine(o)
		}
		return fmt.Sprintf("❌ I couldn't find order \"%s\". Recent orders:\n%s", orderID, strings.Join(lines, "\n")), nil
	}

	updated, err := uc.orderingUC.UpdateStatus(ctx, order.ID, string(status))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Order #%s is now \"%s\".\n\n%s",
		shortOrderID(updated.Order.ID), updated.Order.Status, formatOrderLine(updated.Order)), nil
}

// matchOrder resolves a typed identifier against recent orders, accepting
// any unambiguous id fragment since operators type the short form shown in
// listings. Returns a zero-value order when nothing matches.
func (uc implUseCase) matchOrder(ctx context.Context, fragment string) (model.Order, error) {
	out, err := uc.orderingUC.ListRecent(ctx, 50)
	if err != nil {
		return model.Order{}, err
	}
	fragment = strings.ToLower(fragment)
	for _, o := range out.Orders {
		if strings.Contains(strings.ToLower(o.ID), fragment) {
			return o, nil
		}
	}
	return model.Order{}, nil
}

func (uc implUseCase) handleAdminViewStats(ctx context.Context, turn *turnState) (string, error) {
	restaurants, err := uc.catalogUC.CountRestaurants(ctx)
	if err != nil {
		return "", err
	}
	foods, err := uc.catalogUC.CountFoods(ctx)
	if err != nil {
		return "", err
	}
	stats, err := uc.orderingUC.DashboardStats(ctx, restaurants, foods)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("📊 Dashboard\n\n"+
		"🏪 Restaurants: %d\n🍔 Foods: %d\n📦 Orders: %d\n👥 Users: %d\n💰 Today's revenue: $%.2f",
		stats.Restaurants, stats.Foods, stats.Orders, stats.Users, stats.TodayRevenue), nil
}
