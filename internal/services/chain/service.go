package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/chainbot/internal/common/clock"
	"github.com/KirkDiggler/chainbot/internal/common/uuid"
	"github.com/KirkDiggler/chainbot/internal/models"
	chainRepo "github.com/KirkDiggler/chainbot/internal/repositories/chain"
	"github.com/KirkDiggler/chainbot/internal/timeexpr"
)

// renderTimeout bounds renders that run after a task's context is cancelled
const renderTimeout = 10 * time.Second

// service implements the Service interface
type service struct {
	config   Config
	repo     chainRepo.Repository
	renderer Renderer
	source   ActivitySource
	clock    clock.Clock
	uuid     uuid.UUID
	logger   *slog.Logger

	registry *Registry

	// persistMu orders snapshots so a slow save never overwrites a newer one
	persistMu sync.Mutex

	// root parents every task; Shutdown cancels it with ErrShutdown
	root context.Context
	stop context.CancelCauseFunc
	wg   sync.WaitGroup
}

// New creates a new chain service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Renderer == nil {
		return nil, ErrNilRenderer
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	config := *cfg
	applyDefaults(&config)
	if err := validateIntervals(&config); err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	root, stop := context.WithCancelCause(context.Background())

	return &service{
		config:   config,
		repo:     cfg.Repository,
		renderer: cfg.Renderer,
		source:   cfg.ActivitySource,
		clock:    cfg.Clock,
		uuid:     cfg.UUIDGenerator,
		logger:   logger.With("component", "chain_service"),
		registry: NewRegistry(),
		root:     root,
		stop:     stop,
	}, nil
}

func applyDefaults(cfg *Config) {
	if cfg.CountdownInterval == 0 {
		cfg.CountdownInterval = DefaultCountdownInterval
	}
	if cfg.WarCountdownInterval == 0 {
		cfg.WarCountdownInterval = DefaultWarCountdownInterval
	}
	if cfg.TrackInterval == 0 {
		cfg.TrackInterval = DefaultTrackInterval
	}
	if cfg.InactivityCeiling == 0 {
		cfg.InactivityCeiling = DefaultInactivityCeiling
	}
	if cfg.MaxPollFailures == 0 {
		cfg.MaxPollFailures = DefaultMaxPollFailures
	}
	if cfg.SuperviseInterval == 0 {
		cfg.SuperviseInterval = DefaultSuperviseInterval
	}
	if cfg.LeaderboardSize == 0 {
		cfg.LeaderboardSize = DefaultLeaderboardSize
	}
}

func validateIntervals(cfg *Config) error {
	for _, d := range []time.Duration{cfg.CountdownInterval, cfg.WarCountdownInterval} {
		if d <= 0 || d > MaxCountdownInterval {
			return ErrInvalidInterval
		}
	}
	for _, d := range []time.Duration{cfg.TrackInterval, cfg.InactivityCeiling, cfg.SuperviseInterval} {
		if d <= 0 {
			return ErrInvalidInterval
		}
	}
	if cfg.MaxPollFailures < 0 || cfg.LeaderboardSize < 0 {
		return ErrInvalidInterval
	}
	return nil
}

// CreateChain starts a countdown in a channel that has no live chain
func (s *service) CreateChain(ctx context.Context, input *CreateChainInput) (*CreateChainOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ChannelID == "" {
		return nil, ErrMissingChannelID
	}

	kind := input.Kind
	if kind == "" {
		kind = models.ChainKindPlain
	}
	if kind != models.ChainKindPlain && kind != models.ChainKindWar {
		return nil, ErrUnknownChainKind
	}

	now := s.clock.Now()
	expr, err := timeexpr.Parse(input.TimeExpression, now)
	if err != nil {
		return nil, err
	}

	// Claim the channel before any side effect so a conflict changes nothing
	if err := s.registry.Reserve(input.ChannelID); err != nil {
		return nil, err
	}

	chain := &models.Chain{
		ChannelID:    input.ChannelID,
		GuildID:      input.GuildID,
		EndTime:      expr.Target,
		CreatedAt:    now,
		Organizer:    input.Organizer,
		Status:       models.ChainStatusCountdown,
		Kind:         kind,
		Participants: models.NewParticipants(nil, nil),
	}

	messageID, err := s.renderer.SendChain(ctx, chain, expr.Duration)
	if err != nil {
		s.registry.Release(input.ChannelID)
		return nil, fmt.Errorf("failed to send chain message: %w", err)
	}
	chain.MessageID = messageID

	if err := s.registry.Create(chain); err != nil {
		s.registry.Release(input.ChannelID)
		return nil, err
	}
	s.persist(ctx)

	s.logger.Info("chain created",
		"channel_id", chain.ChannelID,
		"organizer_id", chain.Organizer.ID,
		"kind", chain.Kind,
		"end_time", chain.EndTime,
	)

	s.startTask(chain.ChannelID)

	return &CreateChainOutput{
		Chain:     chain.Clone(),
		Remaining: expr.Duration,
	}, nil
}

// GetChain returns the live chain of a channel
func (s *service) GetChain(ctx context.Context, input *GetChainInput) (*GetChainOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrMissingChannelID
	}

	chain, ok := s.registry.Get(input.ChannelID)
	if !ok {
		return nil, ErrChainNotFound
	}

	return &GetChainOutput{
		Chain:     chain,
		Remaining: chain.Remaining(s.clock.Now()),
		Tracking:  s.registry.Tracking(input.ChannelID),
	}, nil
}

// ListChains returns every live chain
func (s *service) ListChains(ctx context.Context) (*ListChainsOutput, error) {
	return &ListChainsOutput{
		Chains: s.registry.ListNonTerminal(),
	}, nil
}

// Remaining returns the countdown time left in a channel
func (s *service) Remaining(ctx context.Context, input *GetChainInput) (time.Duration, error) {
	output, err := s.GetChain(ctx, input)
	if err != nil {
		return 0, err
	}
	return output.Remaining, nil
}

// OnJoin records that a member will take part
func (s *service) OnJoin(ctx context.Context, input *RespondInput) (*RespondOutput, error) {
	return s.respond(ctx, input, func(p *models.Participants, u models.User) bool {
		return p.Join(u)
	})
}

// OnDecline records that a member can't make it
func (s *service) OnDecline(ctx context.Context, input *RespondInput) (*RespondOutput, error) {
	return s.respond(ctx, input, func(p *models.Participants, u models.User) bool {
		return p.Decline(u)
	})
}

func (s *service) respond(ctx context.Context, input *RespondInput, apply func(p *models.Participants, u models.User) bool) (*RespondOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrMissingChannelID
	}

	if input.User.ID == "" {
		return nil, ErrMissingUser
	}

	chain, changed, err := s.registry.Update(input.ChannelID, func(c *models.Chain) (bool, error) {
		if !c.AcceptsResponses() {
			return false, ErrResponsesClosed
		}
		return apply(c.Participants, input.User), nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.persist(ctx)

		// The countdown task re-renders too; this keeps the lists current between ticks
		if err := s.renderer.UpdateChain(ctx, chain, chain.Remaining(s.clock.Now())); err != nil {
			s.logger.Warn("failed to render response",
				"channel_id", input.ChannelID,
				"user_id", input.User.ID,
				"error", err,
			)
		}
	}

	return &RespondOutput{
		Chain:   chain,
		Changed: changed,
	}, nil
}

// OnCancelRequest cancels the chain if the requester is the organizer or an admin
func (s *service) OnCancelRequest(ctx context.Context, input *CancelInput) (*CancelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrMissingChannelID
	}

	chain, ok := s.registry.Get(input.ChannelID)
	if !ok {
		return nil, ErrChainNotFound
	}

	if !chain.IsOrganizer(input.User.ID) && !input.IsAdmin {
		return nil, ErrNotAuthorized
	}

	if t := s.registry.task(input.ChannelID); t != nil {
		// The owning task renders the notice and removes the chain
		t.cancel(&cancelRequest{by: input.User})
		select {
		case <-t.done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		chain.Status = t.status
		return &CancelOutput{Chain: chain}, nil
	}

	cancelled, ok := s.registry.removeUnowned(input.ChannelID, models.ChainStatusCancelled)
	if !ok {
		// A task picked the chain up or finished it meanwhile
		return s.OnCancelRequest(ctx, input)
	}
	s.persist(ctx)

	if err := s.renderer.Cancelled(ctx, cancelled, input.User); err != nil {
		s.logger.Warn("failed to render cancellation", "channel_id", input.ChannelID, "error", err)
	}
	s.logger.Info("chain cancelled", "channel_id", input.ChannelID, "user_id", input.User.ID)

	return &CancelOutput{Chain: cancelled}, nil
}

// Shutdown stops every task without removing its chain, so persisted chains
// resume on the next start
func (s *service) Shutdown(ctx context.Context) error {
	s.stop(ErrShutdown)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// persist saves a snapshot of every live chain; failures are logged only
func (s *service) persist(ctx context.Context) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	chains := s.registry.ListNonTerminal()
	err := s.repo.SaveChains(context.WithoutCancel(ctx), &chainRepo.SaveChainsInput{
		Chains: chains,
	})
	if err != nil {
		s.logger.Error("failed to persist chains", "chains", len(chains), "error", err)
	}
}
