package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/korvess/DeepMine_Go/internal/domain"
)

// MemoryPlayer is an in-memory Player implementation for tests and local
// development. Safe for concurrent use.
type MemoryPlayer struct {
	mu      sync.RWMutex
	records map[string]PlayerRecord
}

// NewMemoryPlayer creates an empty in-memory player store.
func NewMemoryPlayer() *MemoryPlayer {
	return &MemoryPlayer{records: make(map[string]PlayerRecord)}
}

func (m *MemoryPlayer) Load(_ context.Context, playerKey string) (*PlayerRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[playerKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerKey)
	}
	out := rec
	out.Record = append([]byte(nil), rec.Record...)
	return &out, nil
}

func (m *MemoryPlayer) Save(_ context.Context, playerKey string, rec PlayerRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.Record = append([]byte(nil), rec.Record...)
	rec.UpdatedAt = time.Now()
	m.records[playerKey] = rec
	return nil
}

func (m *MemoryPlayer) Delete(_ context.Context, playerKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, playerKey)
	return nil
}

// Len reports how many players are stored.
func (m *MemoryPlayer) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
