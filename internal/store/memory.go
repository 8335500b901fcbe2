// apps/go-solver/internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// Live solving sessions exist only here; nothing is restored after a restart.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Map access is guarded by an RWMutex (concurrent reads allowed, writes exclusive).
//   - Each session has its own mutex; Update runs one round at a time per session.
//   - ErrNotFound is returned for unknown IDs.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// ErrNotFound is returned when no session has the requested ID.
var ErrNotFound = errors.New("not found")

// Store defines the registry interface for live sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, g *game.Game) error

	// View runs fn with exclusive access to the session.
	// fn must not retain g after returning.
	View(ctx context.Context, id string, fn func(g *game.Game) error) error

	// Update runs fn with exclusive access to the session; it is View with
	// intent to mutate.
	Update(ctx context.Context, id string, fn func(g *game.Game) error) error

	// Delete drops a session. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Len reports the number of live sessions.
	Len() int
}

// entry pairs a session with the mutex that serializes its rounds.
type entry struct {
	mu sync.Mutex
	g  *game.Game
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards games map
	games map[string]*entry // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*entry)}
}

// Save adds or replaces the session in the map.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = &entry{g: g}
	return nil
}

func (m *memory) View(ctx context.Context, id string, fn func(g *game.Game) error) error {
	return m.with(ctx, id, fn)
}

func (m *memory) Update(ctx context.Context, id string, fn func(g *game.Game) error) error {
	return m.with(ctx, id, fn)
}

// with looks up the entry under the read lock, then holds only the entry's lock.
func (m *memory) with(ctx context.Context, id string, fn func(g *game.Game) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	e, ok := m.games[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.g)
}

// Delete removes the session.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

// Len reports the number of stored sessions.
func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
