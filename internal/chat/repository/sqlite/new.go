package sqlite

import (
	"database/sql"
	"fmt"

	"food-ordering-assistant/internal/chat/repository"
	"food-ordering-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the chat engine.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("chat/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/sqlite.%s", method)
}
