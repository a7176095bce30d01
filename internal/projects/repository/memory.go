package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cursorcraft/cursorcraft-backend/internal/projects/domain"
)

// MemoryStore is the Store used when no database is configured.
// Contents are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	now      func() time.Time
	newID    func() (string, error)
	projects map[string]*domain.Project // by public id
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:      time.Now,
		newID:    func() (string, error) { return domain.NewPublicID(domain.PublicIDPrefix) },
		projects: make(map[string]*domain.Project),
	}
}

func clone(p *domain.Project) *domain.Project {
	c := *p
	c.Packages = append([]string{}, p.Packages...)
	if p.DeletedAt != nil {
		t := *p.DeletedAt
		c.DeletedAt = &t
	}
	return &c
}

func (m *MemoryStore) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	if p.Name == "" {
		return nil, errNameRequired
	}
	if p.OwnerID == "" {
		return nil, errOwnerRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := 0; i < maxIDAttempts; i++ {
		id, err := m.newID()
		if err != nil {
			return nil, err
		}
		if _, taken := m.projects[id]; taken {
			continue
		}

		now := m.now().UTC()
		stored := clone(p)
		stored.PublicID = id
		stored.CreatedAt = now
		stored.UpdatedAt = now
		stored.DeletedAt = nil
		m.projects[id] = stored
		return clone(stored), nil
	}
	return nil, domain.ErrIDExhausted
}

func (m *MemoryStore) List(_ context.Context, ownerID string) ([]domain.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Project, 0, 16)
	for _, p := range m.projects {
		if p.OwnerID == ownerID && p.DeletedAt == nil {
			out = append(out, *clone(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].PublicID > out[j].PublicID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) live(ownerID, publicID string) (*domain.Project, bool) {
	p, ok := m.projects[publicID]
	if !ok || p.OwnerID != ownerID || p.DeletedAt != nil {
		return nil, false
	}
	return p, true
}

func (m *MemoryStore) Get(_ context.Context, ownerID, publicID string) (*domain.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.live(ownerID, publicID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(p), nil
}

func (m *MemoryStore) Update(_ context.Context, p *domain.Project) (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.live(p.OwnerID, p.PublicID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	cur.Name = p.Name
	cur.Description = p.Description
	cur.Platform = p.Platform
	cur.Framework = p.Framework
	cur.Packages = append([]string{}, p.Packages...)
	cur.Template = p.Template
	cur.UpdatedAt = m.now().UTC()
	return clone(cur), nil
}

func (m *MemoryStore) SoftDelete(_ context.Context, ownerID, publicID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.live(ownerID, publicID)
	if !ok {
		return false, nil
	}
	now := m.now().UTC()
	cur.DeletedAt = &now
	cur.UpdatedAt = now
	return true, nil
}

func (m *MemoryStore) PurgeDeleted(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, p := range m.projects {
		if p.DeletedAt != nil && p.DeletedAt.Before(before) {
			delete(m.projects, id)
			n++
		}
	}
	return n, nil
}

// Ping always succeeds.
func (m *MemoryStore) Ping(context.Context) error { return nil }
