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

const foodColumns = "id, name, description, price, category, restaurant_id, created_at, updated_at"

// CreateFood inserts a new Food row and returns the entity.
func (r *implRepository) CreateFood(ctx context.Context, opt repository.CreateFoodOptions) (model.Food, error) {
	now := time.Now().UTC()
	f := model.Food{
		ID:           ulid.Make().String(),
		Name:         opt.Name,
		Description:  opt.Description,
		Price:        opt.Price,
		Category:     opt.Category,
		RestaurantID: opt.RestaurantID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	const query = `
		INSERT INTO foods (id, name, description, price, category, restaurant_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.Name, f.Description, f.Price, f.Category, f.RestaurantID,
		formatTime(now), formatTime(now))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateFood"), err)
		return model.Food{}, repository.ErrFailedToInsert
	}
	return f, nil
}

// GetOneFood retrieves a single Food. Name filters are case-insensitive
// substring matches. Zero-value when not found.
func (r *implRepository) GetOneFood(ctx context.Context, opt repository.GetOneFoodOptions) (model.Food, error) {
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
		return model.Food{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM foods WHERE %s LIMIT 1",
		foodColumns, strings.Join(conds, " AND "))

	f, err := r.scanFood(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Food{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneFood"), err)
		return model.Food{}, repository.ErrFailedToGet
	}
	return f, nil
}

// ListFoods returns foods matching the filters.
func (r *implRepository) ListFoods(ctx context.Context, opt repository.ListFoodsOptions) ([]model.Food, error) {
	conds := []string{"1=1"}
	var args []any
	if opt.Name != "" {
		conds = append(conds, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(opt.Name)+"%")
	}
	if opt.Category != "" {
		conds = append(conds, "LOWER(category) LIKE ?")
		args = append(args, "%"+strings.ToLower(opt.Category)+"%")
	}
	if opt.RestaurantID != "" {
		conds = append(conds, "restaurant_id = ?")
		args = append(args, opt.RestaurantID)
	}

	order := "created_at ASC"
	if opt.OrderByPrice {
		order = "price ASC"
	}

	query := fmt.Sprintf("SELECT %s FROM foods WHERE %s ORDER BY %s",
		foodColumns, strings.Join(conds, " AND "), order)
	if opt.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListFoods"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Food
	for rows.Next() {
		f, err := r.scanFood(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListFoods"), err)
			return nil, repository.ErrFailedToList
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ErrFailedToList
	}
	return out, nil
}

// ListFoodsByIDs returns the foods whose ids are in the given set.
func (r *implRepository) ListFoodsByIDs(ctx context.Context, ids []string) ([]model.Food, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := fmt.Sprintf("SELECT %s FROM foods WHERE id IN (%s)", foodColumns, placeholders)

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListFoodsByIDs"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Food
	for rows.Next() {
		f, err := r.scanFood(rows)
		if err != nil {
			return nil, repository.ErrFailedToList
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ErrFailedToList
	}
	return out, nil
}

// DeleteFood removes one food row.
func (r *implRepository) DeleteFood(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM foods WHERE id = ?", id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteFood"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

// DeleteFoodsByRestaurant removes every food of a restaurant.
func (r *implRepository) DeleteFoodsByRestaurant(ctx context.Context, restaurantID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM foods WHERE restaurant_id = ?", restaurantID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteFoodsByRestaurant"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

// CountFoods returns the total food count.
func (r *implRepository) CountFoods(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM foods").Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountFoods"), err)
		return 0, repository.ErrFailedToGet
	}
	return n, nil
}

func (r *implRepository) scanFood(row rowScanner) (model.Food, error) {
	var (
		f       model.Food
		created string
		updated string
	)
	if err := row.Scan(&f.ID, &f.Name, &f.Description, &f.Price, &f.Category, &f.RestaurantID, &created, &updated); err != nil {
		return model.Food{}, err
	}
	f.CreatedAt = parseTime(created)
	f.UpdatedAt = parseTime(updated)
	return f, nil
}
