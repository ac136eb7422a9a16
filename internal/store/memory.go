// internal/store/memory.go
//
// In-memory session store for the HTTP layer. The engine itself is
// stateless; which cities a player has already guessed today is caller
// bookkeeping, and it lives here.
//
// Characteristics:
//   - Stores *Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts — intentional: game history
//     is never persisted server-side.
//   - Errors are returned for missing session IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// GuessRecord is one scored guess in a session's history.
type GuessRecord struct {
	City          string  `json:"city"` // "Name, ST"
	DistanceMiles float64 `json:"distanceMiles"`
	Direction     string  `json:"direction"`
	Tier          string  `json:"tier"`
	Correct       bool    `json:"correct"`
}

// Session is one player's progress for one Central-zone day.
type Session struct {
	ID      string        // random identifier, referenced by the session cookie
	Date    string        // date key the session belongs to
	Guesses []GuessRecord // scored guesses, in order
	Won     bool          // target found
	GaveUp  bool          // player asked for the reveal
}

// Finished reports whether the session accepts no further guesses.
func (s *Session) Finished() bool { return s.Won || s.GaveUp }

// Store defines the persistence interface for player sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session does not exist.
	Get(ctx context.Context, id string) (*Session, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions map
	sessions map[string]*Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}
