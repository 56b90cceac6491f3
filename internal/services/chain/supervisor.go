package chain

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/chainbot/internal/models"
	chainRepo "github.com/KirkDiggler/chainbot/internal/repositories/chain"
	"github.com/KirkDiggler/chainbot/internal/schedule"
)

// Restore loads persisted chains and reconciles them once
func (s *service) Restore(ctx context.Context) (*RestoreOutput, error) {
	loaded, err := s.repo.LoadChains(ctx, &chainRepo.LoadChainsInput{
		Now: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load chains: %w", err)
	}

	output := &RestoreOutput{Dropped: loaded.Dropped}
	for _, chain := range loaded.Chains {
		if err := s.registry.Create(chain); err != nil {
			s.logger.Warn("skipping restored chain", "channel_id", chain.ChannelID, "error", err)
			continue
		}
		output.Loaded++
	}

	// Expired chains were dropped on load, write that back
	if output.Dropped > 0 {
		s.persist(ctx)
	}

	output.Reconcile, err = s.Reconcile(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("chains restored",
		"loaded", output.Loaded,
		"dropped", output.Dropped,
		"started", output.Reconcile.Started,
		"purged", output.Reconcile.Purged,
	)
	return output, nil
}

// Reconcile gives every live chain without a running task a new one.
// Countdowns whose deadline passed go straight to tracking; active chains
// resume tracking with fresh counters.
func (s *service) Reconcile(ctx context.Context) (*ReconcileOutput, error) {
	output := &ReconcileOutput{}

	for _, chain := range s.registry.ListNonTerminal() {
		if err := ctx.Err(); err != nil {
			return output, err
		}

		if s.registry.hasLiveTask(chain.ChannelID) {
			continue
		}

		exists, err := s.renderer.ChannelExists(ctx, chain.ChannelID)
		if err != nil {
			s.logger.Warn("failed to resolve chain channel", "channel_id", chain.ChannelID, "error", err)
			continue
		}
		if !exists {
			if _, ok := s.registry.removeUnowned(chain.ChannelID, models.ChainStatusEnded); ok {
				s.logger.Info("purged chain for missing channel", "channel_id", chain.ChannelID)
				output.Purged++
			}
			continue
		}

		if s.startTask(chain.ChannelID) {
			output.Started++
		}
	}

	if output.Purged > 0 {
		s.persist(ctx)
	}
	return output, nil
}

// Supervise runs Reconcile every SuperviseInterval until ctx is done
func (s *service) Supervise(ctx context.Context) error {
	s.logger.Info("chain supervisor started", "interval", s.config.SuperviseInterval)

	err := schedule.Every(ctx, s.config.SuperviseInterval, func(ctx context.Context) (bool, error) {
		output, err := s.Reconcile(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return true, nil
			}
			s.logger.Warn("reconcile failed", "error", err)
			return false, nil
		}
		if output.Started > 0 || output.Purged > 0 {
			s.logger.Info("reconciled chains", "started", output.Started, "purged", output.Purged)
		}
		return false, nil
	})

	s.logger.Info("chain supervisor stopped", "reason", context.Cause(ctx))
	if ctx.Err() != nil {
		return nil
	}
	return err
}
