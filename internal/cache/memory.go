package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	gocache "github.com/patrickmn/go-cache"
)

// Memory is a process-local report cache on top of go-cache.
type Memory struct {
	cache *gocache.Cache

	// mu orders Set against Invalidate and Clear so a generation check and
	// the write it guards cannot interleave with a bump.
	mu          sync.Mutex
	generations map[string]uint64
}

func NewMemory() *Memory {
	return &Memory{
		cache:       gocache.New(gocache.NoExpiration, 0),
		generations: make(map[string]uint64),
	}
}

// Get decodes the entry into dst and reports whether it was present.
func (m *Memory) Get(_ context.Context, category, key string, dst any) (bool, error) {
	value, found := m.cache.Get(Key(category, key))
	if !found {
		return false, nil
	}
	raw, ok := value.([]byte)
	if !ok {
		return false, fmt.Errorf("unexpected cache entry type %T", value)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal report from cache: %w", err)
	}
	return true, nil
}

// Generation returns the category's current generation. Every Invalidate
// and Clear moves it forward.
func (m *Memory) Generation(_ context.Context, category string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	gen := m.generations[category]
	m.generations[category] = gen
	return gen, nil
}

// Set stores a JSON snapshot so later mutations of value do not leak into
// the cache. It stores nothing and returns false when the category was
// invalidated after generation was read.
func (m *Memory) Set(_ context.Context, category, key string, generation uint64, value any) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("failed to marshal report for cache: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.generations[category] != generation {
		return false, nil
	}
	m.cache.Set(Key(category, key), raw, gocache.NoExpiration)
	return true, nil
}

func (m *Memory) Invalidate(_ context.Context, category, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generations[category]++
	if key != "" {
		m.cache.Delete(Key(category, key))
		return nil
	}
	for k := range m.cache.Items() {
		if inCategory(k, category) {
			m.cache.Delete(k)
		}
	}
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for category := range m.generations {
		m.generations[category]++
	}
	m.cache.Flush()
	return nil
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	return m.cache.ItemCount()
}
