package documents

import (
	"context"
	"sync"
	"time"

	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
)

// Cache stores rendered documents per owner. A miss is not an error:
// documents can always be regenerated from the project record.
type Cache interface {
	Get(ctx context.Context, owner, key string) (string, bool, error)
	Put(ctx context.Context, owner string, docs map[string]string) error
	Delete(ctx context.Context, owner string, keys ...string) error
}

type memoryEntry struct {
	content   string
	expiresAt time.Time
}

// MemoryCache is the Cache used when no Redis address is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *MemoryCache) Get(_ context.Context, owner, key string) (string, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[owner+"/"+key]
	m.mu.RUnlock()
	if !ok {
		return "", false, nil
	}
	if !e.expiresAt.IsZero() && m.now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, owner+"/"+key)
		m.mu.Unlock()
		return "", false, nil
	}
	return e.content, true, nil
}

func (m *MemoryCache) Put(_ context.Context, owner string, docs map[string]string) error {
	var exp time.Time
	if m.ttl > 0 {
		exp = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range docs {
		m.entries[owner+"/"+k] = memoryEntry{content: v, expiresAt: exp}
	}
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, owner string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries, owner+"/"+k)
	}
	return nil
}

// Len reports the number of entries, expired ones included.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// KeysFor returns the cache keys of every document type of a project.
func KeysFor(publicID, projectName string) []string {
	out := make([]string, 0, len(types))
	for _, t := range AllTypes() {
		out = append(out, CacheKey(publicID, projectName, t))
	}
	return out
}

// Entries maps every document of a set to its cache key.
func Entries(publicID, projectName string, set docgen.GeneratedDocumentSet) map[string]string {
	out := make(map[string]string, len(types))
	for _, t := range AllTypes() {
		out[CacheKey(publicID, projectName, t)] = t.Content(set)
	}
	return out
}
