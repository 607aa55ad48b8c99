package middleware

import (
	"food-ordering-assistant/internal/auth"
	"food-ordering-assistant/pkg/log"
)

type Middleware struct {
	l    log.Logger
	gate *auth.Gate
}

func New(l log.Logger, gate *auth.Gate) Middleware {
	return Middleware{
		l:    l,
		gate: gate,
	}
}
