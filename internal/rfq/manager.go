package rfq

import (
	"sync"

	"petro-catalog/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Manager owns one quote-request list per browsing session. Sessions are
// identified by server-issued UUIDs and live until the manager is torn down;
// no eviction or expiry is applied.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*List
	logger   zerolog.Logger
}

// NewManager creates an empty session manager.
func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*List),
		logger:   logger.With().Str("component", "rfq-manager").Logger(),
	}
}

// NewSession creates a fresh quote-request list and returns its session id.
func (m *Manager) NewSession() string {
	id := uuid.NewString()

	m.mu.Lock()
	m.sessions[id] = NewList()
	m.mu.Unlock()

	m.logger.Debug().Str("session_id", id).Msg("quote-request session created")
	return id
}

// Session returns the list for the given session id.
func (m *Manager) Session(id string) (*List, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list, ok := m.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return list, nil
}

// SessionCount returns the number of live sessions.
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
