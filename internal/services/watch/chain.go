package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/chainbot/internal/common/clock"
	"github.com/KirkDiggler/chainbot/internal/models"
	"github.com/KirkDiggler/chainbot/internal/repositories/announcement"
	"github.com/KirkDiggler/chainbot/internal/repositories/notify"
)

const DefaultChainInterval = 60 * time.Second

// ChainConfig holds configuration for the chain watcher
type ChainConfig struct {
	Source        ChainSource
	Announcer     Announcer
	Notifications notify.Repository
	Memory        announcement.Memory
	Clock         clock.Clock

	// Interval defaults to DefaultChainInterval
	Interval time.Duration
	Logger   *slog.Logger
}

// ChainWatcher announces each ongoing external chain once.
// Chains are identified by their start timestamp.
type ChainWatcher struct {
	source    ChainSource
	announcer Announcer
	notify    notify.Repository
	memory    announcement.Memory
	clock     clock.Clock
	interval  time.Duration
	logger    *slog.Logger
}

// NewChainWatcher creates a new chain watcher
func NewChainWatcher(cfg *ChainConfig) (*ChainWatcher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Source == nil {
		return nil, errors.New("chain source cannot be nil")
	}
	if cfg.Announcer == nil {
		return nil, errors.New("announcer cannot be nil")
	}
	if cfg.Notifications == nil {
		return nil, errors.New("notification repository cannot be nil")
	}
	if cfg.Memory == nil {
		return nil, errors.New("announcement memory cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultChainInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ChainWatcher{
		source:    cfg.Source,
		announcer: cfg.Announcer,
		notify:    cfg.Notifications,
		memory:    cfg.Memory,
		clock:     cfg.Clock,
		interval:  interval,
		logger:    logger.With("component", "chain_watcher"),
	}, nil
}

// Run cycles immediately and then every interval until ctx is done
func (w *ChainWatcher) Run(ctx context.Context) error {
	w.logger.Info("chain watcher started", "interval", w.interval)
	defer w.logger.Info("chain watcher stopped")

	return runCycles(ctx, w.interval, w.logger, w.Cycle)
}

// Cycle announces the ongoing chain if it is new and forgets chains that ended
func (w *ChainWatcher) Cycle(ctx context.Context) (*CycleOutput, error) {
	cfg, err := w.notify.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read notification config: %w", err)
	}
	channelID, ok := cfg.Destination(models.NotificationPurposeChain)
	if !ok {
		return &CycleOutput{Skipped: true}, nil
	}

	// only the counters are needed, so skip the attack history
	activity, err := w.source.Activity(ctx, w.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain: %w", err)
	}

	output := &CycleOutput{}
	live := map[string]struct{}{}

	if activity.Ongoing() && activity.ChainID != "" {
		live[activity.ChainID] = struct{}{}

		seen, err := w.memory.Seen(ctx, announcement.ScopeChain, activity.ChainID)
		if err != nil {
			return output, fmt.Errorf("failed to check chain %s: %w", activity.ChainID, err)
		}
		if !seen {
			if err := w.announcer.AnnounceChain(ctx, channelID, activity); err != nil {
				w.logger.Warn("failed to announce chain", "chain_id", activity.ChainID, "error", err)
			} else {
				if err := w.memory.Mark(ctx, announcement.ScopeChain, activity.ChainID); err != nil {
					return output, fmt.Errorf("failed to remember chain %s: %w", activity.ChainID, err)
				}
				w.logger.Info("announced ongoing chain", "chain_id", activity.ChainID, "current", activity.Current)
				output.Announced++
			}
		}
	}

	pruned, err := prune(ctx, w.memory, announcement.ScopeChain, live)
	if err != nil {
		return output, err
	}
	output.Pruned = pruned

	return output, nil
}
