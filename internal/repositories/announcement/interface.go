package announcement

//go:generate mockgen -package=mocks -destination=mocks/mock_memory.go github.com/KirkDiggler/chainbot/internal/repositories/announcement Memory

import (
	"context"
)

// Scope separates the id spaces of different announcement kinds
type Scope string

const (
	// ScopeChain holds ids of ongoing external chains that were announced
	ScopeChain Scope = "chain"

	// ScopeWar holds ids of upcoming ranked wars that were announced
	ScopeWar Scope = "war"
)

// Memory remembers which external events have already been announced
type Memory interface {
	// Seen reports whether id was announced in scope
	Seen(ctx context.Context, scope Scope, id string) (bool, error)

	// Mark remembers id as announced in scope
	Mark(ctx context.Context, scope Scope, id string) error

	// Prune forgets the given ids and returns how many were removed
	Prune(ctx context.Context, scope Scope, ids ...string) (int, error)

	// List returns every remembered id in scope, sorted
	List(ctx context.Context, scope Scope) ([]string, error)
}
