// Package session ties the per-visitor state together: each session id
// owns exactly one cart engine and one wishlist. State is volatile; a
// fresh session starts with an empty cart, a closed drawer, and an empty
// wishlist, and everything is gone when the process exits.
package session

import (
	"sync"

	"storefront-service/internal/cart"
	"storefront-service/internal/wishlist"

	"github.com/google/uuid"
)

// Session is the state owned by one visitor.
type Session struct {
	ID       string
	Cart     *cart.Engine
	Wishlist *wishlist.Wishlist
}

// Manager is the in-process session registry. Sessions are never
// evicted; their lifetime is the process lifetime.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager returns an empty session registry.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create issues a new session with a fresh id and empty state.
func (m *Manager) Create() *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Cart:     cart.New(),
		Wishlist: wishlist.New(),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given id, or nil if it was never
// issued (or belongs to a previous process).
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
