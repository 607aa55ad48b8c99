package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"food-ordering-assistant/internal/model"
	"food-ordering-assistant/internal/ordering/repository"
)

// GetOneUser returns one user record. Zero-value when not found.
func (r *implRepository) GetOneUser(ctx context.Context, id string) (model.User, error) {
	const query = "SELECT id, name, email, cart FROM users WHERE id = ? LIMIT 1"

	var (
		u       model.User
		cartRaw string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &cartRaw)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repository.ErrFailedToGet
	}

	if err := json.Unmarshal([]byte(cartRaw), &u.Cart); err != nil {
		r.l.Warnf(ctx, "%s: corrupt cart for user %s: %v", r.dsn("GetOneUser"), id, err)
		u.Cart = nil
	}
	return u, nil
}

// CountUsers returns the total registered user count.
func (r *implRepository) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountUsers"), err)
		return 0, repository.ErrFailedToGet
	}
	return n, nil
}
