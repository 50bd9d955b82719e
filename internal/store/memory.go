// internal/store/memory.go
//
// In-memory session store for the browser flavor of the game.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex; Get and Update take the write lock
//     because they refresh the game's idle time.
//   - State is lost when the process restarts.
//   - A Game itself is not safe for concurrent use; Update serializes
//     mutations of stored games.
//   - Bounded: games idle longer than the TTL are dropped on the next Save,
//     and when the store is full the least recently used game makes room.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/hangman/internal/game"
)

const (
	// DefaultTTL is how long a game may sit untouched before it is dropped.
	DefaultTTL = time.Hour
	// DefaultMaxGames caps the number of games held at once.
	DefaultMaxGames = 10000
)

// ErrNotFound is returned for unknown (or evicted) game IDs.
var ErrNotFound = errors.New("store: game not found")

// Store defines the session interface for games.
type Store interface {
	// Save adds or replaces a game.
	Save(ctx context.Context, g *game.Game) error

	// Get returns a copy of the game with the given ID; changes to it are
	// not stored.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Update runs fn on the stored game while holding the write lock.
	Update(ctx context.Context, id string, fn func(g *game.Game) error) error

	// Len reports how many games are held.
	Len() int
}

// Option customises the memory store.
type Option func(*memory)

// WithTTL sets the idle lifetime of a game.
func WithTTL(d time.Duration) Option { return func(m *memory) { m.ttl = d } }

// WithMaxGames sets the capacity.
func WithMaxGames(n int) Option { return func(m *memory) { m.max = n } }

// WithClock replaces time.Now (tests).
func WithClock(now func() time.Time) Option { return func(m *memory) { m.now = now } }

type entry struct {
	g       *game.Game
	touched time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards games map and the games in it
	games map[string]*entry // keyed by Game.ID
	ttl   time.Duration
	max   int
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore(opts ...Option) Store {
	m := &memory{
		games: make(map[string]*entry),
		ttl:   DefaultTTL,
		max:   DefaultMaxGames,
		now:   time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.evict(now)
	if _, ok := m.games[g.ID]; !ok && m.max > 0 && len(m.games) >= m.max {
		m.dropOldest()
	}
	m.games[g.ID] = &entry{g: g, touched: now}
	return nil
}

// Get takes the write lock too, since it refreshes the entry's idle time.
func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live(id)
	if !ok {
		return nil, ErrNotFound
	}
	e.touched = m.now()
	return e.g.Clone(), nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(g *game.Game) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live(id)
	if !ok {
		return ErrNotFound
	}
	e.touched = m.now()
	return fn(e.g)
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// live returns the entry for id unless it has expired. Callers hold mu.
func (m *memory) live(id string) (*entry, bool) {
	e, ok := m.games[id]
	if !ok {
		return nil, false
	}
	if m.expired(e, m.now()) {
		delete(m.games, id)
		return nil, false
	}
	return e, true
}

func (m *memory) expired(e *entry, now time.Time) bool {
	return m.ttl > 0 && now.Sub(e.touched) > m.ttl
}

// evict drops every expired game. Callers hold mu.
func (m *memory) evict(now time.Time) {
	for id, e := range m.games {
		if m.expired(e, now) {
			delete(m.games, id)
		}
	}
}

// dropOldest removes the least recently touched game. Callers hold mu.
func (m *memory) dropOldest() {
	var oldest string
	var at time.Time
	for id, e := range m.games {
		if oldest == "" || e.touched.Before(at) {
			oldest, at = id, e.touched
		}
	}
	delete(m.games, oldest)
}
