package wizard

import (
	"sync"

	"github.com/google/uuid"
)

// Manager tracks live wizard sessions by id. Sessions only ever live here;
// they are never written to storage.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[uuid.UUID]*Session)}
}

// Open creates a fresh session for the product. Opening is always a reset;
// an abandoned session for the same product is simply left to be closed.
func (m *Manager) Open(productID uuid.UUID) *Session {
	s := NewSession(productID)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get looks a live session up by id.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close discards a session. In-flight persistence calls are not cancelled;
// whatever they already wrote stays written.
func (m *Manager) Close(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
