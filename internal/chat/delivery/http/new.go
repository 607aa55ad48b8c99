package http

import (
	"food-ordering-assistant/internal/chat"
	"food-ordering-assistant/pkg/log"
)

type handler struct {
	l       log.Logger
	uc      chat.UseCase
	limiter *rateLimiter
}

// New creates the HTTP handler for the chat domain. messagesPerMin bounds
// how fast one session may send.
func New(l log.Logger, uc chat.UseCase, messagesPerMin int) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		limiter: newRateLimiter(messagesPerMin),
	}
}
