package http

import (
	"time"

	"food-ordering-assistant/internal/chat"
	"food-ordering-assistant/internal/model"
)

// --- Request DTOs ---

type messageReq struct {
	Message   string `json:"message"   binding:"required,max=2000"`
	SessionID string `json:"sessionId" binding:"omitempty,max=100"`
	UserID    string `json:"userId"    binding:"omitempty,max=100"`
}

func (r messageReq) toInput(role model.Role, bearer string) chat.ProcessTurnInput {
	return chat.ProcessTurnInput{
		Message:   r.Message,
		SessionID: r.SessionID,
		UserID:    r.UserID,
		Role:      role,
		Bearer:    bearer,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Success              bool    `json:"success"`
	Response             string  `json:"response"`
	Intent               string  `json:"intent"`
	Confidence           float64 `json:"confidence"`
	SessionID            string  `json:"sessionId"`
	ClassificationSource string  `json:"classificationSource"`
	Identity             string  `json:"identity"`
	Authenticated        bool    `json:"authenticated"`
}

func newChatResp(out chat.ProcessTurnOutput) chatResp {
	return chatResp{
		Success:              true,
		Response:             out.Reply,
		Intent:               out.Intent,
		Confidence:           out.Confidence,
		SessionID:            out.SessionID,
		ClassificationSource: out.Source,
		Identity:             out.UserID,
		Authenticated:        out.Authenticated,
	}
}

type historyMessageResp struct {
	Message    string    `json:"message"`
	Sender     string    `json:"sender"`
	Intent     string    `json:"intent,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type historyResp struct {
	Success   bool                 `json:"success"`
	SessionID string               `json:"sessionId"`
	Messages  []historyMessageResp `json:"messages"`
}

func newHistoryResp(sessionID string, out chat.HistoryOutput) historyResp {
	messages := make([]historyMessageResp, len(out.Messages))
	for i, m := range out.Messages {
		messages[i] = historyMessageResp{
			Message:    m.Message,
			Sender:     string(m.Sender),
			Intent:     m.Intent,
			Confidence: m.Confidence,
			Timestamp:  m.Timestamp,
		}
	}
	return historyResp{
		Success:   true,
		SessionID: sessionID,
		Messages:  messages,
	}
}
