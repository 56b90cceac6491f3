package watch

//go:generate mockgen -package=mocks -destination=mocks/mock_watch.go github.com/KirkDiggler/chainbot/internal/services/watch WarSource,ChainSource,Announcer

import (
	"context"
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
)

// WarSource lists the faction's ranked wars
type WarSource interface {
	Wars(ctx context.Context) ([]*models.War, error)
}

// ChainSource reads the faction's chain state
type ChainSource interface {
	Activity(ctx context.Context, since time.Time) (*models.Activity, error)
}

// Announcer posts announcements to a destination channel
type Announcer interface {
	// AnnounceWar posts an upcoming war notice
	AnnounceWar(ctx context.Context, channelID string, war *models.War) error

	// AnnounceChain posts an ongoing chain notice
	AnnounceChain(ctx context.Context, channelID string, activity *models.Activity) error
}

// CycleOutput summarizes one watcher cycle
type CycleOutput struct {
	// Skipped is true when no destination is configured
	Skipped   bool
	Announced int
	Pruned    int
}
