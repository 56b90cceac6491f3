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
	"github.com/KirkDiggler/chainbot/internal/schedule"
)

const DefaultWarInterval = 60 * time.Second

// WarConfig holds configuration for the war watcher
type WarConfig struct {
	Source        WarSource
	Announcer     Announcer
	Notifications notify.Repository
	Memory        announcement.Memory
	Clock         clock.Clock

	// Interval defaults to DefaultWarInterval
	Interval time.Duration
	Logger   *slog.Logger
}

// WarWatcher announces each upcoming ranked war once
type WarWatcher struct {
	source    WarSource
	announcer Announcer
	notify    notify.Repository
	memory    announcement.Memory
	clock     clock.Clock
	interval  time.Duration
	logger    *slog.Logger
}

// NewWarWatcher creates a new war watcher
func NewWarWatcher(cfg *WarConfig) (*WarWatcher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Source == nil {
		return nil, errors.New("war source cannot be nil")
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
		interval = DefaultWarInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &WarWatcher{
		source:    cfg.Source,
		announcer: cfg.Announcer,
		notify:    cfg.Notifications,
		memory:    cfg.Memory,
		clock:     cfg.Clock,
		interval:  interval,
		logger:    logger.With("component", "war_watcher"),
	}, nil
}

// Run cycles immediately and then every interval until ctx is done
func (w *WarWatcher) Run(ctx context.Context) error {
	w.logger.Info("war watcher started", "interval", w.interval)
	defer w.logger.Info("war watcher stopped")

	return runCycles(ctx, w.interval, w.logger, w.Cycle)
}

// Cycle announces wars that have not started and were not announced yet,
// then forgets remembered wars that ended or disappeared
func (w *WarWatcher) Cycle(ctx context.Context) (*CycleOutput, error) {
	cfg, err := w.notify.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read notification config: %w", err)
	}
	channelID, ok := cfg.Destination(models.NotificationPurposeWar)
	if !ok {
		return &CycleOutput{Skipped: true}, nil
	}

	wars, err := w.source.Wars(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wars: %w", err)
	}

	now := w.clock.Now()
	output := &CycleOutput{}
	live := make(map[string]struct{}, len(wars))

	for _, war := range wars {
		if war.HasEnded(now) {
			continue
		}
		live[war.ID] = struct{}{}

		if war.HasStarted(now) {
			continue
		}

		seen, err := w.memory.Seen(ctx, announcement.ScopeWar, war.ID)
		if err != nil {
			return output, fmt.Errorf("failed to check war %s: %w", war.ID, err)
		}
		if seen {
			continue
		}

		// only remember wars that were actually announced so failures retry
		if err := w.announcer.AnnounceWar(ctx, channelID, war); err != nil {
			w.logger.Warn("failed to announce war", "war_id", war.ID, "error", err)
			continue
		}
		if err := w.memory.Mark(ctx, announcement.ScopeWar, war.ID); err != nil {
			return output, fmt.Errorf("failed to remember war %s: %w", war.ID, err)
		}
		w.logger.Info("announced upcoming war", "war_id", war.ID, "start", war.Start)
		output.Announced++
	}

	pruned, err := prune(ctx, w.memory, announcement.ScopeWar, live)
	if err != nil {
		return output, err
	}
	output.Pruned = pruned

	return output, nil
}

// prune forgets every remembered id of scope that is not in keep
func prune(ctx context.Context, memory announcement.Memory, scope announcement.Scope, keep map[string]struct{}) (int, error) {
	remembered, err := memory.List(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("failed to list announcements: %w", err)
	}

	var stale []string
	for _, id := range remembered {
		if _, ok := keep[id]; !ok {
			stale = append(stale, id)
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}

	removed, err := memory.Prune(ctx, scope, stale...)
	if err != nil {
		return 0, fmt.Errorf("failed to prune announcements: %w", err)
	}
	return removed, nil
}

// runCycles calls cycle now and then every interval; cycle failures are logged
func runCycles(ctx context.Context, interval time.Duration, logger *slog.Logger, cycle func(ctx context.Context) (*CycleOutput, error)) error {
	job := func(ctx context.Context) (bool, error) {
		if _, err := cycle(ctx); err != nil {
			if ctx.Err() != nil {
				return true, nil
			}
			logger.Warn("watch cycle failed", "error", err)
		}
		return false, nil
	}

	if done, err := job(ctx); done || err != nil {
		return err
	}

	err := schedule.Every(ctx, interval, job)
	if ctx.Err() != nil {
		return nil
	}
	return err
}
