package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"food-ordering-assistant/internal/ordering/repository"
	"food-ordering-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the ordering domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("ordering/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("ordering/repository/sqlite.%s", method)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
