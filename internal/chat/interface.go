package chat

import "context"

// UseCase is the chat engine façade: one call per conversational turn.
type UseCase interface {
	// ProcessTurn sequences a full turn: load session, classify, gate,
	// route, persist session and transcript.
	ProcessTurn(ctx context.Context, input ProcessTurnInput) (ProcessTurnOutput, error)

	// History returns the session transcript, oldest first, capped at the
	// configured page size.
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
}
