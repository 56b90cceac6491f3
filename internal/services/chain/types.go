package chain

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/chainbot/internal/common/clock"
	"github.com/KirkDiggler/chainbot/internal/common/uuid"
	"github.com/KirkDiggler/chainbot/internal/models"
	chainRepo "github.com/KirkDiggler/chainbot/internal/repositories/chain"
)

const (
	DefaultCountdownInterval    = 5 * time.Second
	DefaultWarCountdownInterval = 15 * time.Second
	DefaultTrackInterval        = 30 * time.Second
	DefaultInactivityCeiling    = 300 * time.Second
	DefaultMaxPollFailures      = 5
	DefaultSuperviseInterval    = 60 * time.Second
	DefaultLeaderboardSize      = 10

	// MaxCountdownInterval bounds how stale a countdown display can get
	MaxCountdownInterval = 30 * time.Second
)

// Config holds configuration for the chain service
type Config struct {
	// CountdownInterval is how often a plain countdown re-renders
	CountdownInterval time.Duration

	// WarCountdownInterval is how often a war countdown re-renders
	WarCountdownInterval time.Duration

	// TrackInterval is how often the activity source is polled while active
	TrackInterval time.Duration

	// InactivityCeiling ends tracking once the counter stalls this long
	InactivityCeiling time.Duration

	// MaxPollFailures is the consecutive failure budget; one more ends tracking
	MaxPollFailures int

	// SuperviseInterval is how often Supervise reconciles tasks
	SuperviseInterval time.Duration

	// LeaderboardSize is how many actors a leaderboard shows
	LeaderboardSize int

	// Repository dependencies
	Repository chainRepo.Repository

	// Service dependencies
	Renderer Renderer

	// ActivitySource is optional; without it chains end right after they start
	ActivitySource ActivitySource

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *slog.Logger
}

// CreateChainInput contains parameters for creating a chain
type CreateChainInput struct {
	// ChannelID is the Discord channel the chain runs in
	ChannelID string

	// GuildID is the Discord server of the channel
	GuildID string

	// Organizer is the member creating the chain
	Organizer models.User

	// Kind selects the plain or war variant
	Kind models.ChainKind

	// TimeExpression is when the chain starts, e.g. "30m" or "18:00tc"
	TimeExpression string
}

// CreateChainOutput contains the result of creating a chain
type CreateChainOutput struct {
	Chain     *models.Chain
	Remaining time.Duration
}

// RespondInput contains parameters for a join or decline
type RespondInput struct {
	ChannelID string
	User      models.User
}

// RespondOutput contains the result of a join or decline
type RespondOutput struct {
	Chain *models.Chain

	// Changed is false when the response repeated the member's current state
	Changed bool
}

// CancelInput contains parameters for a cancellation
type CancelInput struct {
	ChannelID string
	User      models.User

	// IsAdmin is true when the requester holds the privileged role
	IsAdmin bool
}

// CancelOutput contains the result of a cancellation
type CancelOutput struct {
	Chain *models.Chain
}

// GetChainInput identifies a channel's chain
type GetChainInput struct {
	ChannelID string
}

// GetChainOutput contains a live chain
type GetChainOutput struct {
	Chain     *models.Chain
	Remaining time.Duration

	// Tracking is the latest tracking progress, nil until the chain is active
	Tracking *TrackingStatus
}

// ListChainsOutput contains every live chain ordered by channel ID
type ListChainsOutput struct {
	Chains []*models.Chain
}

// RestoreOutput summarizes a restore
type RestoreOutput struct {
	Loaded    int
	Dropped   int
	Reconcile *ReconcileOutput
}

// ReconcileOutput summarizes one reconciliation pass
type ReconcileOutput struct {
	// Started counts chains that got a new task
	Started int

	// Purged counts chains removed because their channel is gone
	Purged int
}

// EndReason explains why tracking stopped
type EndReason string

const (
	// EndReasonInactivity means the counter stalled past the ceiling
	EndReasonInactivity EndReason = "inactivity"

	// EndReasonChainOver means the source reported the chain finished
	EndReasonChainOver EndReason = "chain_over"

	// EndReasonErrors means the poll failure budget ran out
	EndReasonErrors EndReason = "errors"

	// EndReasonUntracked means no activity source is configured
	EndReasonUntracked EndReason = "untracked"
)

// TrackingStatus is the progress shown while a chain is active
type TrackingStatus struct {
	Current     int
	Inactive    time.Duration
	Leaderboard *models.Leaderboard
}

// TrackingResult is the final state of a tracked chain
type TrackingResult struct {
	Reason      EndReason
	Current     int
	Leaderboard *models.Leaderboard
}
