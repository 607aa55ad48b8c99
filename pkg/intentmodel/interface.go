package intentmodel

import "context"

// Prediction is one ranked label from the model.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Provider is the pluggable classification capability. Implementations are
// constructed once at startup and must be safe for concurrent use. Callers
// treat any error as "unavailable" and fall back to pattern classification.
type Provider interface {
	Classify(ctx context.Context, message string) ([]Prediction, error)
}
