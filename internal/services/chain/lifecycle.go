package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
	"github.com/KirkDiggler/chainbot/internal/schedule"
)

// startTask spawns the channel's task unless one is already running
func (s *service) startTask(channelID string) bool {
	if s.root.Err() != nil {
		return false
	}

	ctx, cancel := context.WithCancelCause(s.root)
	t := &task{
		id:     s.uuid.NewUUID(),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	if !s.registry.attach(channelID, t) {
		cancel(nil)
		return false
	}

	s.wg.Add(1)
	go s.run(ctx, t, channelID)
	return true
}

// run drives one chain to a terminal state. Finalization runs on every exit path.
func (s *service) run(ctx context.Context, t *task, channelID string) {
	logger := s.logger.With("channel_id", channelID, "task_id", t.id)
	logger.Debug("chain task started")

	var (
		reason EndReason
		err    error
	)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("chain task panicked: %v", r)
		}
		s.finalize(ctx, t, channelID, reason, err, logger)
		t.cancel(nil)
		close(t.done)
		s.wg.Done()
	}()

	reason, err = s.drive(ctx, channelID, logger)
}

// drive runs the countdown and tracking phases from whatever state the chain is in
func (s *service) drive(ctx context.Context, channelID string, logger *slog.Logger) (EndReason, error) {
	chain, ok := s.registry.Get(channelID)
	if !ok {
		return "", ErrChainNotFound
	}

	if chain.Status == models.ChainStatusCountdown {
		if err := s.countdown(ctx, channelID, logger); err != nil {
			return "", err
		}
		if err := s.activate(ctx, channelID, logger); err != nil {
			return "", err
		}
	}

	return s.track(ctx, channelID, logger)
}

func (s *service) countdownInterval(kind models.ChainKind) time.Duration {
	if kind == models.ChainKindWar {
		return s.config.WarCountdownInterval
	}
	return s.config.CountdownInterval
}

// countdown re-renders until the deadline passes
func (s *service) countdown(ctx context.Context, channelID string, logger *slog.Logger) error {
	next := func() time.Duration {
		chain, ok := s.registry.Get(channelID)
		if !ok {
			return 0
		}
		return min(s.countdownInterval(chain.Kind), chain.Remaining(s.clock.Now()))
	}

	return schedule.Run(ctx, next, func(ctx context.Context) (bool, error) {
		chain, ok := s.registry.Get(channelID)
		if !ok {
			return true, ErrChainNotFound
		}
		if chain.Status != models.ChainStatusCountdown {
			return true, nil
		}

		remaining := chain.Remaining(s.clock.Now())
		if remaining <= 0 {
			return true, nil
		}

		if err := s.renderer.UpdateChain(ctx, chain, remaining); err != nil {
			if isTargetGone(err) {
				return true, err
			}
			logger.Warn("countdown render failed", "error", err)
		}
		s.persist(ctx)
		return false, nil
	})
}

// activate closes responses and announces the start
func (s *service) activate(ctx context.Context, channelID string, logger *slog.Logger) error {
	chain, changed, err := s.registry.Update(channelID, func(c *models.Chain) (bool, error) {
		if c.Status != models.ChainStatusCountdown {
			return false, nil
		}
		c.Status = models.ChainStatusActive
		return true, nil
	})
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	s.persist(ctx)

	logger.Info("chain started", "participants", len(chain.Participants.Joined()))

	if err := s.renderer.AnnounceStart(ctx, chain); err != nil {
		if isTargetGone(err) {
			return err
		}
		logger.Warn("start announcement failed", "error", err)
	}
	return nil
}

// track polls the activity source until the chain goes quiet
func (s *service) track(ctx context.Context, channelID string, logger *slog.Logger) (EndReason, error) {
	chain, ok := s.registry.Get(channelID)
	if !ok {
		return "", ErrChainNotFound
	}

	var result *TrackingResult
	if s.source == nil {
		result = &TrackingResult{
			Reason:      EndReasonUntracked,
			Leaderboard: &models.Leaderboard{},
		}
	} else {
		tr := newTracker(s.config.TrackInterval, s.config.InactivityCeiling, s.config.MaxPollFailures, s.config.LeaderboardSize)
		since := chain.EndTime

		err := schedule.Every(ctx, s.config.TrackInterval, func(ctx context.Context) (bool, error) {
			activity, err := s.source.Activity(ctx, since)
			if err != nil {
				if ctx.Err() != nil {
					return true, context.Cause(ctx)
				}
				logger.Warn("activity poll failed", "error", err)
			}

			step := tr.Observe(activity, err)
			s.registry.setTracking(channelID, step.Status)

			if step.Result != nil {
				result = step.Result
				return true, nil
			}

			current, ok := s.registry.Get(channelID)
			if !ok {
				return true, ErrChainNotFound
			}
			if err := s.renderer.UpdateTracking(ctx, current, step.Status); err != nil {
				if isTargetGone(err) {
					return true, err
				}
				logger.Warn("tracking render failed", "error", err)
			}
			return false, nil
		})
		if err != nil {
			return "", err
		}
	}

	current, ok := s.registry.Get(channelID)
	if !ok {
		return "", ErrChainNotFound
	}
	current.Status = models.ChainStatusEnded
	if err := s.renderer.Final(ctx, current, result); err != nil {
		if !isTargetGone(err) {
			logger.Warn("final leaderboard render failed", "error", err)
		}
	}

	return result.Reason, nil
}

// finalize removes the chain unless the process is shutting down
func (s *service) finalize(ctx context.Context, t *task, channelID string, reason EndReason, err error, logger *slog.Logger) {
	cause := context.Cause(ctx)

	if errors.Is(cause, ErrShutdown) {
		s.registry.detach(channelID, t)
		if chain, ok := s.registry.Get(channelID); ok {
			t.status = chain.Status
		}
		logger.Info("chain task released for shutdown")
		return
	}

	var cancelled *cancelRequest
	status := models.ChainStatusEnded
	if errors.As(cause, &cancelled) {
		status = models.ChainStatusCancelled
	}

	chain, ok := s.registry.finish(channelID, t, status)
	t.status = status
	if !ok {
		return
	}
	s.persist(ctx)

	// ctx is cancelled when a cancel request ended the task
	renderCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), renderTimeout)
	defer cancel()

	switch {
	case cancelled != nil:
		if err := s.renderer.Cancelled(renderCtx, chain, cancelled.by); err != nil {
			logger.Warn("failed to render cancellation", "error", err)
		}
		logger.Info("chain cancelled", "user_id", cancelled.by.ID)
	case isTargetGone(err):
		logger.Info("chain target deleted, ending chain", "error", err)
	case err != nil:
		logger.Error("chain task failed", "error", err)
	default:
		logger.Info("chain ended", "reason", reason)
	}
}
