package sqlite

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"food-ordering-assistant/internal/chat/repository"
	"food-ordering-assistant/internal/model"
)

// CreateMessage appends one transcript entry.
func (r *implRepository) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.ChatMessage, error) {
	msg := model.ChatMessage{
		ID:         ulid.Make().String(),
		SessionID:  opt.SessionID,
		Message:    opt.Message,
		Sender:     opt.Sender,
		Intent:     opt.Intent,
		Confidence: opt.Confidence,
		Timestamp:  time.Now().UTC(),
	}

	const query = `
		INSERT INTO chat_messages (id, session_id, message, sender, intent, confidence, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.SessionID, msg.Message, string(msg.Sender),
		msg.Intent, msg.Confidence, formatTime(msg.Timestamp),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return model.ChatMessage{}, repository.ErrFailedToInsert
	}
	return msg, nil
}

// ListMessages returns a session transcript ordered oldest first.
func (r *implRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.ChatMessage, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = 50
	}

	const query = `
		SELECT id, session_id, message, sender, intent, confidence, timestamp
		FROM chat_messages WHERE session_id = ?
		ORDER BY timestamp ASC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, opt.SessionID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var msgs []model.ChatMessage
	for rows.Next() {
		var (
			m  model.ChatMessage
			ts string
		)
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Message, &m.Sender, &m.Intent, &m.Confidence, &ts); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMessages"), err)
			return nil, repository.ErrFailedToList
		}
		m.Timestamp = parseTime(ts)
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ErrFailedToList
	}
	return msgs, nil
}

// ListRecentIntents returns the intents of the newest user messages for a
// session, ordered oldest first so the last element is the most recent.
func (r *implRepository) ListRecentIntents(ctx context.Context, sessionID string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = model.MaxSessionIntents
	}

	const query = `
		SELECT intent FROM chat_messages
		WHERE session_id = ? AND sender = 'user' AND intent != ''
		ORDER BY timestamp DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecentIntents"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var newestFirst []string
	for rows.Next() {
		var intent string
		if err := rows.Scan(&intent); err != nil {
			return nil, repository.ErrFailedToList
		}
		newestFirst = append(newestFirst, intent)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ErrFailedToList
	}

	// Reverse to oldest-first.
	intents := make([]string, 0, len(newestFirst))
	for i := len(newestFirst) - 1; i >= 0; i-- {
		intents = append(intents, newestFirst[i])
	}
	return intents, nil
}
