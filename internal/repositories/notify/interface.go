package notify

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/chainbot/internal/repositories/notify Repository

import (
	"context"

	"github.com/KirkDiggler/chainbot/internal/models"
)

// Repository stores where announcements are sent
type Repository interface {
	// Get returns the current destinations; missing settings are empty
	Get(ctx context.Context) (*models.NotificationConfig, error)

	// Set changes one destination and returns the updated configuration
	Set(ctx context.Context, input *SetInput) (*models.NotificationConfig, error)
}

type SetInput struct {
	Purpose models.NotificationPurpose

	// ChannelID is the destination; empty disables the purpose
	ChannelID string
}
