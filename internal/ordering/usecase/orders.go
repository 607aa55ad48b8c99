package usecase

import (
	"context"
	"time"

	"food-ordering-assistant/internal/model"
	"food-ordering-assistant/internal/ordering"
	repo "food-ordering-assistant/internal/ordering/repository"
)

// ListRecent returns the newest orders across all users.
func (uc *implUseCase) ListRecent(ctx context.Context, limit int) (ordering.ListOrdersOutput, error) {
	orders, err := uc.repo.ListOrders(ctx, repo.ListOrdersOptions{Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRecent: %v", err)
		return ordering.ListOrdersOutput{}, err
	}
	return ordering.ListOrdersOutput{Orders: orders}, nil
}

// ListByUser returns a user's newest orders.
func (uc *implUseCase) ListByUser(ctx context.Context, userID string, limit int) (ordering.ListOrdersOutput, error) {
	orders, err := uc.repo.ListOrders(ctx, repo.ListOrdersOptions{UserID: userID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByUser: %v", err)
		return ordering.ListOrdersOutput{}, err
	}
	return ordering.ListOrdersOutput{Orders: orders}, nil
}

// ListActiveByUser returns a user's in-flight orders, newest first.
func (uc *implUseCase) ListActiveByUser(ctx context.Context, userID string, limit int) (ordering.ListOrdersOutput, error) {
	orders, err := uc.repo.ListOrders(ctx, repo.ListOrdersOptions{
		UserID:   userID,
		Statuses: []model.OrderStatus{model.StatusFoodProcessing, model.StatusOutForDelivery},
		Limit:    limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListActiveByUser: %v", err)
		return ordering.ListOrdersOutput{}, err
	}
	return ordering.ListOrdersOutput{Orders: orders}, nil
}

// UpdateStatus normalizes rawStatus and applies it to the order. The record
// is never touched when the status text does not resolve.
func (uc *implUseCase) UpdateStatus(ctx context.Context, orderID, rawStatus string) (ordering.UpdateStatusOutput, error) {
	status, ok := model.NormalizeOrderStatus(rawStatus)
	if !ok {
		return ordering.UpdateStatusOutput{}, ordering.ErrInvalidStatus
	}

	order, err := uc.repo.GetOneOrder(ctx, orderID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateStatus GetOneOrder: %v", err)
		return ordering.UpdateStatusOutput{}, err
	}
	if order.ID == "" {
		return ordering.UpdateStatusOutput{}, ordering.ErrOrderNotFound
	}

	if err := uc.repo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateStatus UpdateOrderStatus: %v", err)
		return ordering.UpdateStatusOutput{}, err
	}

	order.Status = status
	return ordering.UpdateStatusOutput{Order: order}, nil
}

// GetUser returns one user record.
func (uc *implUseCase) GetUser(ctx context.Context, userID string) (model.User, error) {
	user, err := uc.repo.GetOneUser(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetUser: %v", err)
		return model.User{}, err
	}
	if user.ID == "" {
		return model.User{}, ordering.ErrUserNotFound
	}
	return user, nil
}

// DashboardStats aggregates counts and today's paid revenue.
func (uc *implUseCase) DashboardStats(ctx context.Context, restaurants, foods int) (ordering.Stats, error) {
	orders, err := uc.repo.CountOrders(ctx)
	if err != nil {
		return ordering.Stats{}, err
	}
	users, err := uc.repo.CountUsers(ctx)
	if err != nil {
		return ordering.Stats{}, err
	}

	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	revenue, err := uc.repo.SumPaidAmountSince(ctx, midnight.Format(time.RFC3339Nano))
	if err != nil {
		return ordering.Stats{}, err
	}

	return ordering.Stats{
		Restaurants:  restaurants,
		Foods:        foods,
		Orders:       orders,
		Users:        users,
		TodayRevenue: revenue,
	}, nil
}
