package chain

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/chainbot/internal/repositories/chain Repository

import (
	"context"
)

// Repository defines the interface for chain persistence.
// The stored representation is always a full snapshot of the live chains.
type Repository interface {
	// SaveChains atomically replaces the stored chains with the non-terminal chains given
	SaveChains(ctx context.Context, input *SaveChainsInput) error

	// LoadChains returns the stored chains whose end time is still ahead of input.Now
	LoadChains(ctx context.Context, input *LoadChainsInput) (*LoadChainsOutput, error)
}
