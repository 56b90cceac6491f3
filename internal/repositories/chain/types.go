package chain

import (
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
)

type SaveChainsInput struct {
	Chains []*models.Chain
}

type LoadChainsInput struct {
	Now time.Time
}

type LoadChainsOutput struct {
	Chains []*models.Chain

	// Dropped counts stored chains that were expired or unreadable
	Dropped int
}
