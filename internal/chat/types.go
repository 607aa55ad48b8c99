package chat

import "food-ordering-assistant/internal/model"

// --- UseCase Inputs ---

// ProcessTurnInput carries one inbound utterance. SessionID and UserID are
// optional; fresh identifiers are minted when absent. Bearer is the raw
// token from the Authorization header, empty when none was supplied.
type ProcessTurnInput struct {
	Message   string
	SessionID string
	UserID    string
	Role      model.Role
	Bearer    string
}

// --- UseCase Outputs ---

type ProcessTurnOutput struct {
	Reply         string
	Intent        string
	Confidence    float64
	Source        string
	SessionID     string
	UserID        string
	Authenticated bool
}

type HistoryOutput struct {
	Messages []model.ChatMessage
}
