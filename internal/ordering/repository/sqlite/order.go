package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"food-ordering-assistant/internal/model"
	"food-ordering-assistant/internal/ordering/repository"
)

const orderColumns = "id, user_id, items, amount, status, payment, date"

// GetOneOrder returns one order. Zero-value when not found.
func (r *implRepository) GetOneOrder(ctx context.Context, id string) (model.Order, error) {
	query := fmt.Sprintf("SELECT %s FROM orders WHERE id = ? LIMIT 1", orderColumns)

	o, err := r.scanOrder(ctx, r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Order{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneOrder"), err)
		return model.Order{}, repository.ErrFailedToGet
	}
	return o, nil
}

// ListOrders returns orders matching the filters, newest first.
func (r *implRepository) ListOrders(ctx context.Context, opt repository.ListOrdersOptions) ([]model.Order, error) {
	conds := []string{"1=1"}
	var args []any
	if opt.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if len(opt.Statuses) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(opt.Statuses)), ",")
		conds = append(conds, fmt.Sprintf("status IN (%s)", placeholders))
		for _, st := range opt.Statuses {
			args = append(args, string(st))
		}
	}

	query := fmt.Sprintf("SELECT %s FROM orders WHERE %s ORDER BY date DESC",
		orderColumns, strings.Join(conds, " AND "))
	if opt.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOrders"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Order
	for rows.Next() {
		o, err := r.scanOrder(ctx, rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListOrders"), err)
			return nil, repository.ErrFailedToList
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ErrFailedToList
	}
	return out, nil
}

// UpdateOrderStatus sets the status of one order.
func (r *implRepository) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE orders SET status = ? WHERE id = ?", string(status), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateOrderStatus"), err)
		return repository.ErrFailedToUpdate
	}
	return nil
}

// CountOrders returns the total order count.
func (r *implRepository) CountOrders(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders").Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountOrders"), err)
		return 0, repository.ErrFailedToGet
	}
	return n, nil
}

// SumPaidAmountSince totals paid order amounts placed at or after since
// (RFC3339).
func (r *implRepository) SumPaidAmountSince(ctx context.Context, since string) (float64, error) {
	var total sql.NullFloat64
	const query = "SELECT SUM(amount) FROM orders WHERE payment = 1 AND date >= ?"
	if err := r.db.QueryRowContext(ctx, query, since).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SumPaidAmountSince"), err)
		return 0, repository.ErrFailedToGet
	}
	return total.Float64, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanOrder(ctx context.Context, row rowScanner) (model.Order, error) {
	var (
		o        model.Order
		itemsRaw string
		payment  int
		date     string
	)
	if err := row.Scan(&o.ID, &o.UserID, &itemsRaw, &o.Amount, &o.Status, &payment, &date); err != nil {
		return model.Order{}, err
	}
	if err := json.Unmarshal([]byte(itemsRaw), &o.Items); err != nil {
		r.l.Warnf(ctx, "%s: corrupt items for order %s: %v", r.dsn("scanOrder"), o.ID, err)
		o.Items = nil
	}
	o.Payment = payment != 0
	o.Date = parseTime(date)
	return o, nil
}
