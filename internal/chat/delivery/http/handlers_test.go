package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"food-ordering-assistant/internal/chat"
	"food-ordering-assistant/internal/model"
)

type mockUseCase struct {
	processTurnFunc func(ctx context.Context, input chat.ProcessTurnInput) (chat.ProcessTurnOutput, error)
	historyFunc     func(ctx context.Context, sessionID string) (chat.HistoryOutput, error)
}

func (m *mockUseCase) ProcessTurn(ctx context.Context, input chat.ProcessTurnInput) (chat.ProcessTurnOutput, error) {
	if m.processTurnFunc != nil {
		return m.processTurnFunc(ctx, input)
	}
	return chat.ProcessTurnOutput{}, nil
}

func (m *mockUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, sessionID)
	}
	return chat.HistoryOutput{}, nil
}

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any)                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, args ...any)                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, args ...any)                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}

func newTestRouter(uc chat.UseCase, messagesPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(noopLogger{}, uc, messagesPerMin)
	RegisterRoutes(r.Group("/api"), h)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCustomerMessage(t *testing.T) {
	t.Run("missing message rejected", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{}, 60)

		w := postJSON(t, r, "/api/chatbot/customer/message", map[string]string{}, nil)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if body["success"] != false {
			t.Errorf("expected success false, got %v", body["success"])
		}
	})

	t.Run("successful turn returns flattened payload", func(t *testing.T) {
		uc := &mockUseCase{
			processTurnFunc: func(ctx context.Context, input chat.ProcessTurnInput) (chat.ProcessTurnOutput, error) {
				if input.Role != model.RoleCustomer {
					t.Errorf("expected customer role, got %q", input.Role)
				}
				if input.Bearer != "tok-123" {
					t.Errorf("expected bearer passed through, got %q", input.Bearer)
				}
				return chat.ProcessTurnOutput{
					Reply:         "here you go",
					Intent:        "customer_recommend_food",
					Confidence:    0.8,
					Source:        "pattern",
					SessionID:     "sess-1",
					UserID:        "user-1",
					Authenticated: true,
				}, nil
			},
		}
		r := newTestRouter(uc, 60)

		w := postJSON(t, r, "/api/chatbot/customer/message",
			map[string]string{"message": "recommend something", "sessionId": "sess-1"},
			map[string]string{"Authorization": "Bearer tok-123"})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if body["success"] != true {
			t.Errorf("expected success true, got %v", body["success"])
		}
		if body["response"] != "here you go" {
			t.Errorf("unexpected response %v", body["response"])
		}
		if body["intent"] != "customer_recommend_food" {
			t.Errorf("unexpected intent %v", body["intent"])
		}
		if body["classificationSource"] != "pattern" {
			t.Errorf("unexpected source %v", body["classificationSource"])
		}
		if body["identity"] != "user-1" {
			t.Errorf("unexpected identity %v", body["identity"])
		}
		if body["authenticated"] != true {
			t.Errorf("expected authenticated true, got %v", body["authenticated"])
		}
	})

	t.Run("engine failure hides detail", func(t *testing.T) {
		uc := &mockUseCase{
			processTurnFunc: func(ctx context.Context, input chat.ProcessTurnInput) (chat.ProcessTurnOutput, error) {
				return chat.ProcessTurnOutput{}, errors.New("sqlite: database is locked")
			},
		}
		r := newTestRouter(uc, 60)

		w := postJSON(t, r, "/api/chatbot/customer/message", map[string]string{"message": "hi"}, nil)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("sqlite")) {
			t.Error("internal error detail leaked to client")
		}
	})

	t.Run("rate limited session", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{}, 6) // burst of 1

		first := postJSON(t, r, "/api/chatbot/customer/message",
			map[string]string{"message": "hi", "sessionId": "sess-rl"}, nil)
		if first.Code != http.StatusOK {
			t.Fatalf("expected first request to pass, got %d", first.Code)
		}

		second := postJSON(t, r, "/api/chatbot/customer/message",
			map[string]string{"message": "hi again", "sessionId": "sess-rl"}, nil)
		if second.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", second.Code)
		}
	})
}

func TestAdminMessage(t *testing.T) {
	uc := &mockUseCase{
		processTurnFunc: func(ctx context.Context, input chat.ProcessTurnInput) (chat.ProcessTurnOutput, error) {
			if input.Role != model.RoleAdmin {
				t.Errorf("expected admin role, got %q", input.Role)
			}
			return chat.ProcessTurnOutput{Reply: "ok", Intent: "admin_view_stats", SessionID: "s"}, nil
		},
	}
	r := newTestRouter(uc, 60)

	w := postJSON(t, r, "/api/chatbot/admin/message", map[string]string{"message": "show stats"}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestHistory(t *testing.T) {
	uc := &mockUseCase{
		historyFunc: func(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
			if sessionID != "sess-9" {
				t.Errorf("expected sess-9, got %q", sessionID)
			}
			return chat.HistoryOutput{Messages: []model.ChatMessage{
				{Message: "hi", Sender: model.SenderUser, Timestamp: time.Now()},
				{Message: "hello!", Sender: model.SenderBot, Timestamp: time.Now()},
			}}, nil
		},
	}
	r := newTestRouter(uc, 60)

	req := httptest.NewRequest(http.MethodGet, "/api/chatbot/history/sess-9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body historyResp
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if !body.Success || body.SessionID != "sess-9" || len(body.Messages) != 2 {
		t.Errorf("unexpected body: %+v", body)
	}
}
