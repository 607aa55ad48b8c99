package usecase

import (
	"sync"

	"food-ordering-assistant/internal/auth"
	"food-ordering-assistant/internal/catalog"
	"food-ordering-assistant/internal/chat/repository"
	"food-ordering-assistant/internal/ordering"
	"food-ordering-assistant/pkg/intentmodel"
	"food-ordering-assistant/pkg/log"
)

// ModelConfidenceFloor is the minimum score at which a model prediction
// overrides pattern classification.
const ModelConfidenceFloor = 0.6

// HistoryPageSize caps transcript reads.
const HistoryPageSize = 50

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	repo       repository.Repository
	catalogUC  catalog.UseCase
	orderingUC ordering.UseCase
	gate       *auth.Gate
	model      intentmodel.Provider // nil when no model classifier is configured
	l          log.Logger

	router map[string]handlerFunc
	locks  *sessionLocks
}

// New creates the chat engine. The model provider is optional; pass nil to
// run on pattern classification alone.
func New(repo repository.Repository, catalogUC catalog.UseCase, orderingUC ordering.UseCase, gate *auth.Gate, model intentmodel.Provider, l log.Logger) *implUseCase {
	uc := &implUseCase{
		repo:       repo,
		catalogUC:  catalogUC,
		orderingUC: orderingUC,
		gate:       gate,
		model:      model,
		l:          l,
		locks:      newSessionLocks(),
	}
	uc.router = uc.buildRouter()
	return uc
}

// sessionLocks serializes turns per session identifier. Entries are
// reference counted and removed when the last holder releases, so the table
// only holds in-flight sessions and a held lock can never be displaced.
type sessionLocks struct {
	mu      sync.Mutex
	entries map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{entries: make(map[string]*sessionLock)}
}

func (s *sessionLocks) lock(sessionID string) {
	s.mu.Lock()
	e, ok := s.entries[sessionID]
	if !ok {
		e = &sessionLock{}
		s.entries[sessionID] = e
	}
	e.refs++
	s.mu.Unlock()

	e.mu.Lock()
}

func (s *sessionLocks) unlock(sessionID string) {
	s.mu.Lock()
	e := s.entries[sessionID]
	e.refs--
	if e.refs == 0 {
		delete(s.entries, sessionID)
	}
	s.mu.Unlock()

	e.mu.Unlock()
}
