package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"food-ordering-assistant/internal/auth"
	"food-ordering-assistant/internal/chat"
	"food-ordering-assistant/internal/chat/repository"
	"food-ordering-assistant/internal/classifier"
	"food-ordering-assistant/internal/model"
)

const handlerFaultReply = "Sorry, something went wrong while handling that. Please try again. 🙏"

func (uc implUseCase) ProcessTurn(ctx context.Context, input chat.ProcessTurnInput) (chat.ProcessTurnOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.ProcessTurnOutput{}, chat.ErrEmptyMessage
	}

	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	uc.locks.lock(sessionID)
	defer uc.locks.unlock(sessionID)

	session, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ProcessTurn.GetSession: %v", err)
		return chat.ProcessTurnOutput{}, err
	}

	var claims *auth.Claims
	if input.Bearer != "" {
		if c, verr := uc.gate.Verify(input.Bearer); verr == nil {
			claims = c
		}
	}
	authenticated := claims != nil

	// A verified token binds its subject as the caller identity when the
	// request does not claim one.
	userID := strings.TrimSpace(input.UserID)
	if userID == "" && claims != nil {
		userID = claims.UserID
	}
	if session.ID == "" {
		if userID == "" {
			userID = mintAnonymousID(input.Role)
		}
		now := time.Now()
		session = model.Session{
			ID:        sessionID,
			UserID:    userID,
			Role:      input.Role,
			CreatedAt: now,
			UpdatedAt: now,
		}
	} else if userID == "" {
		userID = session.UserID
	}

	previous := session.PreviousIntents
	if len(previous) == 0 {
		// Session rows created before intent tracking carry no history;
		// reconstruct it from the transcript.
		previous, err = uc.repo.ListRecentIntents(ctx, sessionID, model.MaxSessionIntents)
		if err != nil {
			uc.l.Warnf(ctx, "chat.usecase.ProcessTurn.ListRecentIntents: %v", err)
			previous = nil
		}
	}

	resolution := uc.classify(ctx, message, input.Role, previous)

	if err := uc.appendMessage(ctx, sessionID, message, model.SenderUser, resolution); err != nil {
		return chat.ProcessTurnOutput{}, err
	}

	var reply string
	identity, authErr := uc.gate.Authorize(resolution.Intent, claims, input.Bearer != "", userID)
	switch {
	case errors.Is(authErr, auth.ErrLoginRequired):
		reply = "🔒 Please log in to do that. Sign in to your account and try again."
	case errors.Is(authErr, auth.ErrSessionExpired):
		reply = "⏰ Your session has expired. Please log in again to continue."
	case errors.Is(authErr, auth.ErrIdentityMismatch):
		reply = "🔒 Your login doesn't match this account. Please log in again."
	case authErr != nil:
		uc.l.Errorf(ctx, "chat.usecase.ProcessTurn.Authorize: %v", authErr)
		reply = "🔒 Please log in to do that. Sign in to your account and try again."
	default:
		if identity != "" {
			userID = identity
		}
		reply = uc.dispatch(ctx, resolution.Intent, &turnState{
			Message: message,
			UserID:  userID,
			Role:    input.Role,
		})
	}

	if err := uc.appendMessage(ctx, sessionID, reply, model.SenderBot, resolution); err != nil {
		return chat.ProcessTurnOutput{}, err
	}

	session.UserID = userID
	session.AppendIntent(resolution.Intent)
	session.UpdatedAt = time.Now()
	if err := uc.repo.UpsertSession(ctx, session); err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ProcessTurn.UpsertSession: %v", err)
		return chat.ProcessTurnOutput{}, err
	}

	return chat.ProcessTurnOutput{
		Reply:         reply,
		Intent:        resolution.Intent,
		Confidence:    resolution.Confidence,
		Source:        resolution.Source,
		SessionID:     sessionID,
		UserID:        userID,
		Authenticated: authenticated,
	}, nil
}

// classify resolves the intent for a message. A confident, role-appropriate
// model prediction wins; otherwise session context, then keyword patterns.
// A model label outside the routed vocabulary is discarded so the resolved
// intent always has a handler.
func (uc implUseCase) classify(ctx context.Context, message string, role model.Role, previous []string) classifier.Resolution {
	if uc.model != nil {
		predictions, err := uc.model.Classify(ctx, message)
		if err != nil {
			uc.l.Warnf(ctx, "chat.usecase.classify: model classifier unavailable: %v", err)
		} else if len(predictions) > 0 {
			top := predictions[0]
			_, known := uc.router[top.Label]
			if known && top.Score > ModelConfidenceFloor && classifier.AllowedForRole(top.Label, role) {
				return classifier.Resolution{
					Intent:     top.Label,
					Confidence: top.Score,
					Source:     classifier.SourceModel,
				}
			}
		}
	}

	if res, ok := classifier.ResolveContext(message, role, previous); ok {
		return res
	}
	return classifier.Classify(message, role)
}

// dispatch runs the routed handler, converting panics and handler errors
// into an apology so the turn still completes and persists.
func (uc implUseCase) dispatch(ctx context.Context, intent string, turn *turnState) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "chat.usecase.dispatch: handler panic for %s: %v", intent, r)
			reply = handlerFaultReply
		}
	}()

	handler, ok := uc.router[intent]
	if !ok {
		// buildRouter guarantees coverage; an unknown label here means a
		// classifier/router drift bug.
		uc.l.Errorf(ctx, "chat.usecase.dispatch: no handler for intent %s", intent)
		return handlerFaultReply
	}

	reply, err := handler(ctx, turn)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.dispatch: handler %s: %v", intent, err)
		return handlerFaultReply
	}
	return reply
}

func (uc implUseCase) appendMessage(ctx context.Context, sessionID, text string, sender model.Sender, res classifier.Resolution) error {
	_, err := uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		SessionID:  sessionID,
		Message:    text,
		Sender:     sender,
		Intent:     res.Intent,
		Confidence: res.Confidence,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.appendMessage: %v", err)
		return err
	}
	return nil
}

func (uc implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	messages, err := uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
		SessionID: sessionID,
		Limit:     HistoryPageSize,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.History.ListMessages: %v", err)
		return chat.HistoryOutput{}, err
	}
	return chat.HistoryOutput{Messages: messages}, nil
}

func mintAnonymousID(role model.Role) string {
	prefix := auth.GuestPrefix
	if role == model.RoleAdmin {
		prefix = auth.OperatorPrefix
	}
	return fmt.Sprintf("%s%s", prefix, uuid.NewString())
}
