package usecase

import (
	"context"

	"food-ordering-assistant/internal/catalog"
	"food-ordering-assistant/internal/chat/repository"
	"food-ordering-assistant/internal/model"
	"food-ordering-assistant/internal/ordering"
	"food-ordering-assistant/pkg/intentmodel"
)

// mockRepository implements repository.Repository with overridable funcs and
// a recording default for writes.
type mockRepository struct {
	getSessionFunc        func(ctx context.Context, id string) (model.Session, error)
	upsertSessionFunc     func(ctx context.Context, session model.Session) error
	createMessageFunc     func(ctx context.Context, opt repository.CreateMessageOptions) (model.ChatMessage, error)
	listMessagesFunc      func(ctx context.Context, opt repository.ListMessagesOptions) ([]model.ChatMessage, error)
	listRecentIntentsFunc func(ctx context.Context, sessionID string, limit int) ([]string, error)

	savedSessions []model.Session
	savedMessages []repository.CreateMessageOptions
}

func (m *mockRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	if m.getSessionFunc != nil {
		return m.getSessionFunc(ctx, id)
	}
	return model.Session{}, nil
}

func (m *mockRepository) UpsertSession(ctx context.Context, session model.Session) error {
	if m.upsertSessionFunc != nil {
		return m.upsertSessionFunc(ctx, session)
	}
	m.savedSessions = append(m.savedSessions, session)
	return nil
}

func (m *mockRepository) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.ChatMessage, error) {
	if m.createMessageFunc != nil {
		return m.createMessageFunc(ctx, opt)
	}
	m.savedMessages = append(m.savedMessages, opt)
	return model.ChatMessage{ID: "msg", SessionID: opt.SessionID}, nil
}

func (m *mockRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.ChatMessage, error) {
	if m.listMessagesFunc != nil {
		return m.listMessagesFunc(ctx, opt)
	}
	return nil, nil
}

func (m *mockRepository) ListRecentIntents(ctx context.Context, sessionID string, limit int) ([]string, error) {
	if m.listRecentIntentsFunc != nil {
		return m.listRecentIntentsFunc(ctx, sessionID, limit)
	}
	return nil, nil
}

// mockCatalog implements catalog.UseCase. Unset funcs return zero values.
type mockCatalog struct {
	createRestaurantFunc     func(ctx context.Context, input catalog.CreateRestaurantInput) (catalog.CreateRestaurantOutput, error)
	listRestaurantsFunc      func(ctx context.Context) (catalog.ListRestaurantsOutput, error)
	findRestaurantByNameFunc func(ctx context.Context, name string) (model.Restaurant, error)
	createFoodFunc           func(ctx context.Context, input catalog.CreateFoodInput) (catalog.CreateFoodOutput, error)
	listFoodsFunc            func(ctx context.Context) (catalog.ListFoodsOutput, error)
	searchFoodsByNameFunc    func(ctx context.Context, term string, limit int) (catalog.ListFoodsOutput, error)
	searchByCategoryFunc     func(ctx context.Context, category string, limit int) (catalog.ListFoodsOutput, error)
	cheapestFoodsFunc        func(ctx context.Context, limit int) (catalog.ListFoodsOutput, error)
	findFoodByNameFunc       func(ctx context.Context, name string) (catalog.FoodWithRestaurant, error)
	foodsByIDsFunc           func(ctx context.Context, ids []string) ([]model.Food, error)
	deleteRestaurantFunc     func(ctx context.Context, id string) error
	deleteFoodFunc           func(ctx context.Context, id string) error
}

func (m *mockCatalog) CreateRestaurant(ctx context.Context, input catalog.CreateRestaurantInput) (catalog.CreateRestaurantOutput, error) {
	if m.createRestaurantFunc != nil {
		return m.createRestaurantFunc(ctx, input)
	}
	return catalog.CreateRestaurantOutput{}, nil
}

func (m *mockCatalog) ListRestaurants(ctx context.Context) (catalog.ListRestaurantsOutput, error) {
	if m.listRestaurantsFunc != nil {
		return m.listRestaurantsFunc(ctx)
	}
	return catalog.ListRestaurantsOutput{}, nil
}

func (m *mockCatalog) DetailRestaurant(ctx context.Context, id string) (catalog.DetailRestaurantOutput, error) {
	return catalog.DetailRestaurantOutput{}, nil
}

func (m *mockCatalog) UpdateRestaurant(ctx context.Context, input catalog.UpdateRestaurantInput) (catalog.UpdateRestaurantOutput, error) {
	return catalog.UpdateRestaurantOutput{}, nil
}

func (m *mockCatalog) DeleteRestaurant(ctx context.Context, id string) error {
	if m.deleteRestaurantFunc != nil {
		return m.deleteRestaurantFunc(ctx, id)
	}
	return nil
}

func (m *mockCatalog) FindRestaurantByName(ctx context.Context, name string) (model.Restaurant, error) {
	if m.findRestaurantByNameFunc != nil {
		return m.findRestaurantByNameFunc(ctx, name)
	}
	return model.Restaurant{}, nil
}

func (m *mockCatalog) CreateFood(ctx context.Context, input catalog.CreateFoodInput) (catalog.CreateFoodOutput, error) {
	if m.createFoodFunc != nil {
		return m.createFoodFunc(ctx, input)
	}
	return catalog.CreateFoodOutput{}, nil
}

func (m *mockCatalog) ListFoods(ctx context.Context) (catalog.ListFoodsOutput, error) {
	if m.listFoodsFunc != nil {
		return m.listFoodsFunc(ctx)
	}
	return catalog.ListFoodsOutput{}, nil
}

func (m *mockCatalog) ListFoodsByRestaurant(ctx context.Context, restaurantID string) (catalog.ListFoodsOutput, error) {
	return catalog.ListFoodsOutput{}, nil
}

func (m *mockCatalog) SearchFoodsByName(ctx context.Context, term string, limit int) (catalog.ListFoodsOutput, error) {
	if m.searchFoodsByNameFunc != nil {
		return m.searchFoodsByNameFunc(ctx, term, limit)
	}
	return catalog.ListFoodsOutput{}, nil
}

func (m *mockCatalog) SearchFoodsByCategory(ctx context.Context, category string, limit int) (catalog.ListFoodsOutput, error) {
	if m.searchByCategoryFunc != nil {
		return m.searchByCategoryFunc(ctx, category, limit)
	}
	return catalog.ListFoodsOutput{}, nil
}

func (m *mockCatalog) CheapestFoods(ctx context.Context, limit int) (catalog.ListFoodsOutput, error) {
	if m.cheapestFoodsFunc != nil {
		return m.cheapestFoodsFunc(ctx, limit)
	}
	return catalog.ListFoodsOutput{}, nil
}

func (m *mockCatalog) FindFoodByName(ctx context.Context, name string) (catalog.FoodWithRestaurant, error) {
	if m.findFoodByNameFunc != nil {
		return m.findFoodByNameFunc(ctx, name)
	}
	return catalog.FoodWithRestaurant{}, nil
}

func (m *mockCatalog) FoodsByIDs(ctx context.Context, ids []string) ([]model.Food, error) {
	if m.foodsByIDsFunc != nil {
		return m.foodsByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockCatalog) DeleteFood(ctx context.Context, id string) error {
	if m.deleteFoodFunc != nil {
		return m.deleteFoodFunc(ctx, id)
	}
	return nil
}

func (m *mockCatalog) CountRestaurants(ctx context.Context) (int, error) { return 0, nil }

func (m *mockCatalog) CountFoods(ctx context.Context) (int, error) { return 0, nil }

// mockOrdering implements ordering.UseCase. Unset funcs return zero values.
type mockOrdering struct {
	listRecentFunc       func(ctx context.Context, limit int) (ordering.ListOrdersOutput, error)
	listByUserFunc       func(ctx context.Context, userID string, limit int) (ordering.ListOrdersOutput, error)
	listActiveByUserFunc func(ctx context.Context, userID string, limit int) (ordering.ListOrdersOutput, error)
	updateStatusFunc     func(ctx context.Context, orderID, rawStatus string) (ordering.UpdateStatusOutput, error)
	getUserFunc          func(ctx context.Context, userID string) (model.User, error)
	dashboardStatsFunc   func(ctx context.Context, restaurants, foods int) (ordering.Stats, error)
}

func (m *mockOrdering) ListRecent(ctx context.Context, limit int) (ordering.ListOrdersOutput, error) {
	if m.listRecentFunc != nil {
		return m.listRecentFunc(ctx, limit)
	}
	return ordering.ListOrdersOutput{}, nil
}

func (m *mockOrdering) ListByUser(ctx context.Context, userID string, limit int) (ordering.ListOrdersOutput, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID, limit)
	}
	return ordering.ListOrdersOutput{}, nil
}

func (m *mockOrdering) ListActiveByUser(ctx context.Context, userID string, limit int) (ordering.ListOrdersOutput, error) {
	if m.listActiveByUserFunc != nil {
		return m.listActiveByUserFunc(ctx, userID, limit)
	}
	return ordering.ListOrdersOutput{}, nil
}

func (m *mockOrdering) UpdateStatus(ctx context.Context, orderID, rawStatus string) (ordering.UpdateStatusOutput, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, orderID, rawStatus)
	}
	return ordering.UpdateStatusOutput{}, nil
}

func (m *mockOrdering) GetUser(ctx context.Context, userID string) (model.User, error) {
	if m.getUserFunc != nil {
		return m.getUserFunc(ctx, userID)
	}
	return model.User{}, nil
}

func (m *mockOrdering) DashboardStats(ctx context.Context, restaurants, foods int) (ordering.Stats, error) {
	if m.dashboardStatsFunc != nil {
		return m.dashboardStatsFunc(ctx, restaurants, foods)
	}
	return ordering.Stats{}, nil
}

// mockModel implements intentmodel.Provider.
type mockModel struct {
	classifyFunc func(ctx context.Context, message string) ([]intentmodel.Prediction, error)
}

func (m *mockModel) Classify(ctx context.Context, message string) ([]intentmodel.Prediction, error) {
	if m.classifyFunc != nil {
		return m.classifyFunc(ctx, message)
	}
	return nil, nil
}

// noopLogger satisfies log.Logger for tests.
type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any)                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, args ...any)                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, args ...any)                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}
