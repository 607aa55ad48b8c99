package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"food-ordering-assistant/internal/catalog/repository"
	"food-ordering-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the catalog domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("catalog/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/sqlite.%s", method)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
