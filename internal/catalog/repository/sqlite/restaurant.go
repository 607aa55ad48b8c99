package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"food-ordering-assistant/internal/catalog/repository"
	"food-ordering-assistant/internal/model"
)

const restaurantColumns = "id, name, address, phone, created_at, updated_at"

// CreateRestaurant inserts a new Restaurant row and returns the entity.
func (r *implRepository) CreateRestaurant(ctx context.Context, opt repository.CreateRestaurantOptions) (model.Restaurant, error) {
	now := time.Now().UTC()
	res := model.Restaurant{
		ID:        ulid.Make().String(),
		Name:      opt.Name,
		Address:   opt.Address,
		Phone:     opt.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	const query = `
		INSERT INTO restaurants (id, name, address, phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		res.ID, res.Name, res.Address, res.Phone, formatTime(now), formatTime(now))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRestaurant"), err)
		return model.Restaurant{}, repository.ErrFailedToInsert
	}
	return res, nil
}

// GetOneRestaurant retrieves a single Restaurant. Name filters are
// case-insensitive substring matches. Zero-value when not found.
func (r *implRepository) GetOneRestaurant(ctx context.Context, opt repository.GetOneRestaurantOptions) (model.Restaurant, error) {
	var (
		conds []string
		args  []any
	)
	if opt.ID != "" {
		conds = append(conds, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Name != "" {
		conds = append(conds, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(opt.Name)+"%")
	}
	if len(conds) == 0 {
		return model.Restaurant{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM restaurants WHERE %s LIMIT 1",
		restaurantColumns, strings.Join(conds, " AND "))

	res, err := r.scanRestaurant(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Restaurant{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRestaurant"), err)
		return model.Restaurant{}, repository.ErrFailedToGet
	}
	return res, nil
}

// ListRestaurants returns every restaurant, oldest first.
func (r *implRepository) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	query := fmt.Sprintf("SELECT %s FROM restaurants ORDER BY created_at ASC", restaurantColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRestaurants"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Restaurant
	for rows.Next() {
		res, err := r.scanRestaurant(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRestaurants"), err)
			return nil, repository.ErrFailedToList
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ErrFailedToList
	}
	return out, nil
}

// UpdateRestaurant applies the non-empty fields and returns the updated row.
func (r *implRepository) UpdateRestaurant(ctx context.Context, opt repository.UpdateRestaurantOptions) (model.Restaurant, error) {
	sets := []string{"updated_at = ?"}
	args := []any{formatTime(time.Now())}
	if opt.Name != "" {
		sets = append(sets, "name = ?")
		args = append(args, opt.Name)
	}
	if opt.Address != "" {
		sets = append(sets, "address = ?")
		args = append(args, opt.Address)
	}
	if opt.Phone != "" {
		sets = append(sets, "phone = ?")
		args = append(args, opt.Phone)
	}
	args = append(args, opt.ID)

	query := fmt.Sprintf("UPDATE restaurants SET %s WHERE id = ?", strings.Join(sets, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRestaurant"), err)
		return model.Restaurant{}, repository.ErrFailedToUpdate
	}

	return r.GetOneRestaurant(ctx, repository.GetOneRestaurantOptions{ID: opt.ID})
}

// DeleteRestaurant removes one restaurant row.
func (r *implRepository) DeleteRestaurant(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM restaurants WHERE id = ?", id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteRestaurant"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

// CountRestaurants returns the total restaurant count.
func (r *implRepository) CountRestaurants(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountRestaurants"), err)
		return 0, repository.ErrFailedToGet
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanRestaurant(row rowScanner) (model.Restaurant, error) {
	var (
		res     model.Restaurant
		created string
		updated string
	)
	if err := row.Scan(&res.ID, &res.Name, &res.Address, &res.Phone, &created, &updated); err != nil {
		return model.Restaurant{}, err
	}
	res.CreatedAt = parseTime(created)
	res.UpdatedAt = parseTime(updated)
	return res, nil
}
