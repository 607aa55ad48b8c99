package http

import (
	"food-ordering-assistant/internal/catalog"
	"food-ordering-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc catalog.UseCase
}

// New creates the HTTP handler for the catalog domain.
func New(l log.Logger, uc catalog.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
