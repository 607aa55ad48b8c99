package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"food-ordering-assistant/internal/model"
	"food-ordering-assistant/internal/ordering"
	repo "food-ordering-assistant/internal/ordering/repository"
)

type mockRepository struct {
	getOneOrderFunc        func(ctx context.Context, id string) (model.Order, error)
	listOrdersFunc         func(ctx context.Context, opt repo.ListOrdersOptions) ([]model.Order, error)
	updateOrderStatusFunc  func(ctx context.Context, id string, status model.OrderStatus) error
	countOrdersFunc        func(ctx context.Context) (int, error)
	sumPaidAmountSinceFunc func(ctx context.Context, since string) (float64, error)
	getOneUserFunc         func(ctx context.Context, id string) (model.User, error)
	countUsersFunc         func(ctx context.Context) (int, error)
}

func (m *mockRepository) GetOneOrder(ctx context.Context, id string) (model.Order, error) {
	if m.getOneOrderFunc != nil {
		return m.getOneOrderFunc(ctx, id)
	}
	return model.Order{}, nil
}

func (m *mockRepository) ListOrders(ctx context.Context, opt repo.ListOrdersOptions) ([]model.Order, error) {
	if m.listOrdersFunc != nil {
		return m.listOrdersFunc(ctx, opt)
	}
	return nil, nil
}

func (m *mockRepository) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if m.updateOrderStatusFunc != nil {
		return m.updateOrderStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockRepository) CountOrders(ctx context.Context) (int, error) {
	if m.countOrdersFunc != nil {
		return m.countOrdersFunc(ctx)
	}
	return 0, nil
}

func (m *mockRepository) SumPaidAmountSince(ctx context.Context, since string) (float64, error) {
	if m.sumPaidAmountSinceFunc != nil {
		return m.sumPaidAmountSinceFunc(ctx, since)
	}
	return 0, nil
}

func (m *mockRepository) GetOneUser(ctx context.Context, id string) (model.User, error) {
	if m.getOneUserFunc != nil {
		return m.getOneUserFunc(ctx, id)
	}
	return model.User{}, nil
}

func (m *mockRepository) CountUsers(ctx context.Context) (int, error) {
	if m.countUsersFunc != nil {
		return m.countUsersFunc(ctx)
	}
	return 0, nil
}

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any)                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, args ...any)                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, args ...any)                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}

func TestUpdateStatus(t *testing.T) {
	t.Run("invalid status never touches the store", func(t *testing.T) {
		called := false
		mock := &mockRepository{
			getOneOrderFunc: func(ctx context.Context, id string) (model.Order, error) {
				called = true
				return model.Order{}, nil
			},
		}
		uc := New(mock, noopLogger{})

		_, err := uc.UpdateStatus(context.Background(), "ord-1", "teleported")
		if !errors.Is(err, ordering.ErrInvalidStatus) {
			t.Fatalf("UpdateStatus err = %v, want ErrInvalidStatus", err)
		}
		if called {
			t.Fatal("GetOneOrder called for an invalid status")
		}
	})

	t.Run("order not found", func(t *testing.T) {
		uc := New(&mockRepository{}, noopLogger{})

		_, err := uc.UpdateStatus(context.Background(), "missing", "delivered")
		if !errors.Is(err, ordering.ErrOrderNotFound) {
			t.Fatalf("UpdateStatus err = %v, want ErrOrderNotFound", err)
		}
	})

	t.Run("normalizes synonym before write", func(t *testing.T) {
		var gotStatus model.OrderStatus
		mock := &mockRepository{
			getOneOrderFunc: func(ctx context.Context, id string) (model.Order, error) {
				return model.Order{ID: id, Status: model.StatusFoodProcessing}, nil
			},
			updateOrderStatusFunc: func(ctx context.Context, id string, status model.OrderStatus) error {
				gotStatus = status
				return nil
			},
		}
		uc := New(mock, noopLogger{})

		out, err := uc.UpdateStatus(context.Background(), "ord-1", "completed")
		if err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if gotStatus != model.StatusDelivered {
			t.Fatalf("stored status = %q, want %q", gotStatus, model.StatusDelivered)
		}
		if out.Order.Status != model.StatusDelivered {
			t.Fatalf("returned status = %q, want %q", out.Order.Status, model.StatusDelivered)
		}
	})

	t.Run("write failure surfaces", func(t *testing.T) {
		mock := &mockRepository{
			getOneOrderFunc: func(ctx context.Context, id string) (model.Order, error) {
				return model.Order{ID: id}, nil
			},
			updateOrderStatusFunc: func(ctx context.Context, id string, status model.OrderStatus) error {
				return errors.New("disk full")
			},
		}
		uc := New(mock, noopLogger{})

		if _, err := uc.UpdateStatus(context.Background(), "ord-1", "cancelled"); err == nil {
			t.Fatal("expected error from failing write")
		}
	})
}

func TestListActiveByUser(t *testing.T) {
	var gotOpt repo.ListOrdersOptions
	mock := &mockRepository{
		listOrdersFunc: func(ctx context.Context, opt repo.ListOrdersOptions) ([]model.Order, error) {
			gotOpt = opt
			return []model.Order{{ID: "ord-1", Status: model.StatusOutForDelivery}}, nil
		},
	}
	uc := New(mock, noopLogger{})

	out, err := uc.ListActiveByUser(context.Background(), "user-7", 3)
	if err != nil {
		t.Fatalf("ListActiveByUser: %v", err)
	}
	if gotOpt.UserID != "user-7" || gotOpt.Limit != 3 {
		t.Fatalf("options = %+v, want UserID user-7 limit 3", gotOpt)
	}
	wantStatuses := []model.OrderStatus{model.StatusFoodProcessing, model.StatusOutForDelivery}
	if !reflect.DeepEqual(gotOpt.Statuses, wantStatuses) {
		t.Fatalf("statuses = %v, want %v", gotOpt.Statuses, wantStatuses)
	}
	if len(out.Orders) != 1 {
		t.Fatalf("orders = %d, want 1", len(out.Orders))
	}
}

func TestGetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock := &mockRepository{
			getOneUserFunc: func(ctx context.Context, id string) (model.User, error) {
				return model.User{ID: id, Name: "Ada"}, nil
			},
		}
		uc := New(mock, noopLogger{})

		user, err := uc.GetUser(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("GetUser: %v", err)
		}
		if user.Name != "Ada" {
			t.Fatalf("user = %+v", user)
		}
	})

	t.Run("missing maps to ErrUserNotFound", func(t *testing.T) {
		uc := New(&mockRepository{}, noopLogger{})

		if _, err := uc.GetUser(context.Background(), "ghost"); !errors.Is(err, ordering.ErrUserNotFound) {
			t.Fatalf("GetUser err = %v, want ErrUserNotFound", err)
		}
	})
}

func TestDashboardStats(t *testing.T) {
	var gotSince string
	mock := &mockRepository{
		countOrdersFunc: func(ctx context.Context) (int, error) { return 42, nil },
		countUsersFunc:  func(ctx context.Context) (int, error) { return 7, nil },
		sumPaidAmountSinceFunc: func(ctx context.Context, since string) (float64, error) {
			gotSince = since
			return 123.45, nil
		},
	}
	uc := New(mock, noopLogger{})

	stats, err := uc.DashboardStats(context.Background(), 3, 12)
	if err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}
	want := ordering.Stats{Restaurants: 3, Foods: 12, Orders: 42, Users: 7, TodayRevenue: 123.45}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}

	since, err := time.Parse(time.RFC3339Nano, gotSince)
	if err != nil {
		t.Fatalf("since %q is not RFC3339Nano: %v", gotSince, err)
	}
	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	if !since.Equal(midnight) {
		t.Fatalf("since = %v, want today's UTC midnight %v", since, midnight)
	}
}
