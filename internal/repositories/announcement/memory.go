package announcement

import (
	"context"
	"sort"
	"sync"
)

// inMemory keeps announced ids for the lifetime of the process
type inMemory struct {
	mu     sync.Mutex
	scopes map[Scope]map[string]struct{}
}

// NewInMemory creates a process-local announcement memory
func NewInMemory() *inMemory {
	return &inMemory{
		scopes: make(map[Scope]map[string]struct{}),
	}
}

func (m *inMemory) Seen(ctx context.Context, scope Scope, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.scopes[scope][id]
	return ok, nil
}

func (m *inMemory) Mark(ctx context.Context, scope Scope, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids, ok := m.scopes[scope]
	if !ok {
		ids = make(map[string]struct{})
		m.scopes[scope] = ids
	}
	ids[id] = struct{}{}
	return nil
}

func (m *inMemory) Prune(ctx context.Context, scope Scope, ids ...string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for _, id := range ids {
		if _, ok := m.scopes[scope][id]; ok {
			delete(m.scopes[scope], id)
			removed++
		}
	}
	return removed, nil
}

func (m *inMemory) List(ctx context.Context, scope Scope) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.scopes[scope]))
	for id := range m.scopes[scope] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
