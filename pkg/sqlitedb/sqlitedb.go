// Package sqlitedb opens the service database and applies the schema.
package sqlitedb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens or creates the SQLite database at path and runs migrations.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS chat_sessions (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL,
		role             TEXT NOT NULL,
		previous_intents TEXT NOT NULL DEFAULT '[]',
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS chat_messages (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		message    TEXT NOT NULL,
		sender     TEXT NOT NULL,
		intent     TEXT,
		confidence REAL,
		timestamp  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_messages_session ON chat_messages(session_id, timestamp);

	CREATE TABLE IF NOT EXISTS restaurants (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		address    TEXT NOT NULL,
		phone      TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS foods (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		description   TEXT NOT NULL,
		price         REAL NOT NULL,
		category      TEXT NOT NULL,
		restaurant_id TEXT NOT NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_foods_restaurant ON foods(restaurant_id);

	CREATE TABLE IF NOT EXISTS orders (
		id      TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		items   TEXT NOT NULL DEFAULT '[]',
		amount  REAL NOT NULL DEFAULT 0,
		status  TEXT NOT NULL,
		payment INTEGER NOT NULL DEFAULT 0,
		date    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, date);

	CREATE TABLE IF NOT EXISTS users (
		id    TEXT PRIMARY KEY,
		name  TEXT NOT NULL,
		email TEXT NOT NULL,
		cart  TEXT NOT NULL DEFAULT '{}'
	);
	`
	_, err := db.Exec(schema)
	return err
}
