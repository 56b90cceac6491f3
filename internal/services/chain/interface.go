package chain

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/chainbot/internal/services/chain Service
//go:generate mockgen -package=chain -destination=mock_renderer_test.go github.com/KirkDiggler/chainbot/internal/services/chain Renderer

import (
	"context"
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
)

// Responder handles member responses to a chain message
type Responder interface {
	// OnJoin records that a member will take part
	OnJoin(ctx context.Context, input *RespondInput) (*RespondOutput, error)

	// OnDecline records that a member can't make it
	OnDecline(ctx context.Context, input *RespondInput) (*RespondOutput, error)

	// OnCancelRequest cancels the chain if the requester is allowed to
	OnCancelRequest(ctx context.Context, input *CancelInput) (*CancelOutput, error)
}

// Service defines the interface for chain operations
type Service interface {
	Responder

	// CreateChain starts a countdown in a channel that has no live chain
	CreateChain(ctx context.Context, input *CreateChainInput) (*CreateChainOutput, error)

	// GetChain returns the live chain of a channel
	GetChain(ctx context.Context, input *GetChainInput) (*GetChainOutput, error)

	// ListChains returns every live chain
	ListChains(ctx context.Context) (*ListChainsOutput, error)

	// Remaining returns the countdown time left in a channel
	Remaining(ctx context.Context, input *GetChainInput) (time.Duration, error)

	// Restore loads persisted chains and reconciles them once
	Restore(ctx context.Context) (*RestoreOutput, error)

	// Reconcile gives every live chain without a running task a new one
	Reconcile(ctx context.Context) (*ReconcileOutput, error)

	// Supervise runs Reconcile periodically until ctx is done
	Supervise(ctx context.Context) error
}

// Renderer draws chains in the chat platform.
// Implementations return ErrMessageGone or ErrChannelGone when the target was deleted.
type Renderer interface {
	// SendChain posts the countdown message and returns its ID
	SendChain(ctx context.Context, chain *models.Chain, remaining time.Duration) (string, error)

	// UpdateChain edits the countdown message
	UpdateChain(ctx context.Context, chain *models.Chain, remaining time.Duration) error

	// AnnounceStart disables responses and pings every joined member
	AnnounceStart(ctx context.Context, chain *models.Chain) error

	// UpdateTracking shows live tracking progress
	UpdateTracking(ctx context.Context, chain *models.Chain, status *TrackingStatus) error

	// Final shows the final leaderboard
	Final(ctx context.Context, chain *models.Chain, result *TrackingResult) error

	// Cancelled shows the cancellation notice and disables responses
	Cancelled(ctx context.Context, chain *models.Chain, by models.User) error

	// ChannelExists reports whether the channel can still be resolved
	ChannelExists(ctx context.Context, channelID string) (bool, error)
}

// ActivitySource reads the external chain counters and attack log
type ActivitySource interface {
	Activity(ctx context.Context, since time.Time) (*models.Activity, error)
}
