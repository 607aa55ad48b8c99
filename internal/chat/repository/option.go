package repository

import "food-ordering-assistant/internal/model"

// CreateMessageOptions holds parameters for appending one transcript entry.
type CreateMessageOptions struct {
	SessionID  string
	Message    string
	Sender     model.Sender
	Intent     string
	Confidence float64
}

// ListMessagesOptions holds filter parameters for reading a transcript.
// Messages are returned ordered by timestamp, oldest first.
type ListMessagesOptions struct {
	SessionID string
	Limit     int
}
