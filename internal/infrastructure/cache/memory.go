// Package cache provides the result-memoization backends injected into
// the aggregator.
package cache

import (
	"context"
	"sync"
	"time"

	"HistoryScanner/internal/domain"
	"HistoryScanner/internal/ports"
)

// DefaultTTL matches the upstream data's daily refresh cycle.
const DefaultTTL = 24 * time.Hour

// Memory is a process-local TTL cache. Entries are written once per key
// and expire lazily on read; last writer wins under concurrency.
type Memory struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	result    domain.Result
	expiresAt time.Time
}

var _ ports.Cache = (*Memory)(nil)

// NewMemory builds an in-memory cache; ttl <= 0 selects DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]memoryEntry{},
	}
}

func (m *Memory) Get(ctx context.Context, key string) (domain.Result, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || m.now().After(entry.expiresAt) {
		return domain.Result{}, false
	}
	return entry.result, true
}

func (m *Memory) Set(ctx context.Context, key string, result domain.Result) {
	m.mu.Lock()
	m.entries[key] = memoryEntry{result: result, expiresAt: m.now().Add(m.ttl)}
	m.mu.Unlock()
}
