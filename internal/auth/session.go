package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrWrongPassword = errors.New("wrong password")

// sessionTTL bounds how long an unlocked editing session stays valid.
const sessionTTL = 12 * time.Hour

// Manager gates the catalog editing endpoints behind a single shared
// secret. A correct password unlocks editing for that session only:
// the caller gets a token to send on subsequent edit requests.
type Manager struct {
	password string
	mu       sync.RWMutex
	sessions map[string]time.Time
}

// NewManager creates a session manager with the configured shared secret
func NewManager(password string) *Manager {
	return &Manager{
		password: password,
		sessions: make(map[string]time.Time),
	}
}

// Login compares the submitted password verbatim against the shared
// secret and issues a session token on success.
func (m *Manager) Login(password string) (string, error) {
	if password != m.password {
		return "", ErrWrongPassword
	}

	token := uuid.New().String()

	m.mu.Lock()
	m.sessions[token] = time.Now().Add(sessionTTL)
	m.mu.Unlock()

	return token, nil
}

// Validate reports whether the token names a live editing session.
func (m *Manager) Validate(token string) bool {
	m.mu.RLock()
	expiry, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return false
	}

	if time.Now().After(expiry) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return false
	}

	return true
}
