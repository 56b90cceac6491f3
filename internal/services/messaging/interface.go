package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/chainbot/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetChainStatusMessage returns the title, description and colour for a chain message
	GetChainStatusMessage(ctx context.Context, input *GetChainStatusMessageInput) (*GetChainStatusMessageOutput, error)

	// GetChainStartedMessage returns a message for when the countdown is over
	GetChainStartedMessage(ctx context.Context, input *GetChainStartedMessageInput) (*GetChainStartedMessageOutput, error)

	// GetChainEndedMessage returns a message for when tracking finished
	GetChainEndedMessage(ctx context.Context, input *GetChainEndedMessageInput) (*GetChainEndedMessageOutput, error)

	// GetAnnouncementMessage returns a message for a watcher announcement
	GetAnnouncementMessage(ctx context.Context, input *GetAnnouncementMessageInput) (*GetAnnouncementMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
