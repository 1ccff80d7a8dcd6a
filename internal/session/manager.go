// Package session owns the live player sessions: an LRU of in-memory
// extraction sessions hydrated from the player repository, with dirty
// tracking so saves can be debounced instead of written per hit.
package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/korvess/DeepMine_Go/internal/catalog"
	"github.com/korvess/DeepMine_Go/internal/domain"
	"github.com/korvess/DeepMine_Go/internal/extraction"
	"github.com/korvess/DeepMine_Go/internal/ledger"
	"github.com/korvess/DeepMine_Go/internal/logger"
	"github.com/korvess/DeepMine_Go/internal/metrics"
	"github.com/korvess/DeepMine_Go/internal/power"
	"github.com/korvess/DeepMine_Go/internal/repository"
)

const evictionFlushTimeout = 5 * time.Second

// entry is one player's live state. The mutex serializes every mutation
// for that player; cross-player work never contends on it.
type entry struct {
	mu      sync.Mutex
	key     string
	world   string
	session *extraction.Session
	dirty   bool
}

// Manager hydrates, caches, and flushes player sessions. All methods are
// safe for concurrent use; per-player operations are serialized on the
// player's entry.
type Manager struct {
	registry *catalog.Registry
	repo     repository.Player
	curve    *power.Curve

	mu  sync.Mutex
	lru *expirable.LRU[string, *entry]
}

// NewManager creates a session manager backed by the given repository.
// Evicted dirty sessions are flushed before they drop out of memory.
func NewManager(registry *catalog.Registry, repo repository.Player, size int, ttl time.Duration) *Manager {
	m := &Manager{
		registry: registry,
		repo:     repo,
		curve:    power.DefaultCurve(),
	}
	m.lru = expirable.NewLRU(size, m.onEvict, ttl)
	return m
}

func (m *Manager) onEvict(_ string, e *entry) {
	metrics.SessionsEvicted.Inc()
	metrics.SessionsLive.Dec()

	ctx, cancel := context.WithTimeout(context.Background(), evictionFlushTimeout)
	defer cancel()
	if err := m.flushEntry(ctx, e); err != nil {
		logger.FromContext(ctx).Error("failed to flush evicted session",
			"player", e.key, "error", err)
	}
}

// With runs fn against the player's session, serialized with every other
// operation for that player, and marks the session dirty when fn reports
// a mutation. fn must not retain the session past its return.
func (m *Manager) With(ctx context.Context, playerKey, world string, fn func(*extraction.Session) (mutated bool, err error)) error {
	e, err := m.acquire(ctx, playerKey, world)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	mutated, err := fn(e.session)
	if mutated {
		e.dirty = true
	}
	return err
}

// acquire returns the cached entry for a player, hydrating from storage on
// a miss. A world switch rebuilds the extraction session at depth zero on
// the same ledger.
func (m *Manager) acquire(ctx context.Context, playerKey, world string) (*entry, error) {
	cat, err := m.registry.World(world)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.lru.Get(playerKey); ok {
		if e.world != world {
			e.mu.Lock()
			e.session = extraction.NewSession(cat, e.session.Ledger(), 0, newRand())
			e.world = world
			e.dirty = true
			e.mu.Unlock()
		}
		return e, nil
	}

	e, err := m.hydrate(ctx, playerKey, world, cat)
	if err != nil {
		return nil, err
	}

	m.lru.Add(playerKey, e)
	metrics.SessionsLive.Inc()
	metrics.SessionsLoaded.Inc()
	return e, nil
}

// hydrate loads a player's record and builds the live session. A missing
// record starts a fresh player; a corrupt record falls back to a default
// state so the player keeps playing, losing only the corrupted values.
func (m *Manager) hydrate(ctx context.Context, playerKey, world string, cat *catalog.Catalog) (*entry, error) {
	state := ledger.DefaultState()
	depth := 0
	dirty := false

	rec, err := m.repo.Load(ctx, playerKey)
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		dirty = true
	case err != nil:
		return nil, err
	default:
		loaded, derr := ledger.Deserialize(rec.Record, cat.MaxPickaxeTier())
		if derr != nil {
			metrics.CorruptRecords.Inc()
			logger.FromContext(ctx).Warn("persisted record failed validation, using defaults",
				"player", playerKey, "error", derr)
			dirty = true
		} else {
			state = loaded
			depth = rec.Depth
			if rec.World != "" && rec.World != world {
				depth = 0
			}
		}
	}

	led := ledger.New(state, m.curve)
	return &entry{
		key:     playerKey,
		world:   world,
		session: extraction.NewSession(cat, led, depth, newRand()),
		dirty:   dirty,
	}, nil
}

// FlushDirty persists every dirty session currently in memory. Errors are
// counted and logged per player; one bad save does not stop the sweep.
func (m *Manager) FlushDirty(ctx context.Context) {
	for _, e := range m.entries() {
		if err := m.flushEntry(ctx, e); err != nil {
			logger.FromContext(ctx).Error("failed to flush session",
				"player", e.key, "error", err)
		}
	}
}

// Shutdown flushes everything and drops the cache. Call once on process
// exit after the HTTP surface has stopped.
func (m *Manager) Shutdown(ctx context.Context) {
	m.FlushDirty(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	// Eviction callbacks fire during Purge; entries are already clean so
	// the flushes no-op.
	m.lru.Purge()
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Len()
}

func (m *Manager) entries() []*entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Values()
}

func (m *Manager) flushEntry(ctx context.Context, e *entry) error {
	e.mu.Lock()
	if !e.dirty {
		e.mu.Unlock()
		return nil
	}
	raw, err := ledger.Serialize(e.session.Ledger().Snapshot())
	if err != nil {
		e.mu.Unlock()
		metrics.SaveErrors.Inc()
		return err
	}
	rec := repository.PlayerRecord{
		World:  e.world,
		Depth:  e.session.Depth(),
		Record: raw,
	}
	e.dirty = false
	e.mu.Unlock()

	if err := m.repo.Save(ctx, e.key, rec); err != nil {
		metrics.SaveErrors.Inc()
		e.mu.Lock()
		e.dirty = true
		e.mu.Unlock()
		return err
	}

	metrics.SaveFlushes.Inc()
	return nil
}

func newRand() extraction.RandSource {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return r.Float64
}
