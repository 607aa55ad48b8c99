package repository

import (
	"context"

	"food-ordering-assistant/internal/model"
)

// Repository is the composed interface for chat engine persistence.
type Repository interface {
	SessionRepository
	MessageRepository
}

// SessionRepository persists per-conversation session records.
type SessionRepository interface {
	// GetSession returns the session with the given id, or a zero-value
	// Session (ID == "") when none exists; not-found is not an error.
	GetSession(ctx context.Context, id string) (model.Session, error)

	// UpsertSession inserts or replaces the session record.
	UpsertSession(ctx context.Context, session model.Session) error
}

// MessageRepository persists the append-only transcript.
type MessageRepository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (model.ChatMessage, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]model.ChatMessage, error)

	// ListRecentIntents returns the intents of the most recent user
	// messages, newest last, used to rebuild history when the session's
	// bounded intent list is unavailable.
	ListRecentIntents(ctx context.Context, sessionID string, limit int) ([]string, error)
}
