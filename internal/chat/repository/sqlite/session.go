package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"food-ordering-assistant/internal/chat/repository"
	"food-ordering-assistant/internal/model"
)

// GetSession retrieves a session by id. Returns a zero-value Session
// (ID == "") when not found; not-found is not an error.
func (r *implRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	const query = `
		SELECT id, user_id, role, previous_intents, created_at, updated_at
		FROM chat_sessions WHERE id = ? LIMIT 1`

	var (
		s          model.Session
		intentsRaw string
		created    string
		updated    string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.Role, &intentsRaw, &created, &updated,
	)
	if err == sql.ErrNoRows {
		return model.Session{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return model.Session{}, repository.ErrFailedToGet
	}

	if err := json.Unmarshal([]byte(intentsRaw), &s.PreviousIntents); err != nil {
		r.l.Warnf(ctx, "%s: corrupt intent history for %s: %v", r.dsn("GetSession"), id, err)
		s.PreviousIntents = nil
	}
	s.CreatedAt = parseTime(created)
	s.UpdatedAt = parseTime(updated)
	return s, nil
}

// UpsertSession inserts or replaces a session record.
func (r *implRepository) UpsertSession(ctx context.Context, s model.Session) error {
	intents, err := json.Marshal(s.PreviousIntents)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("UpsertSession"), err)
		return repository.ErrFailedToUpsert
	}

	const query = `
		INSERT INTO chat_sessions (id, user_id, role, previous_intents, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			previous_intents = excluded.previous_intents,
			updated_at = excluded.updated_at`

	_, err = r.db.ExecContext(ctx, query,
		s.ID, s.UserID, string(s.Role), string(intents),
		formatTime(s.CreatedAt), formatTime(s.UpdatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSession"), err)
		return repository.ErrFailedToUpsert
	}
	return nil
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
