package messaging

import (
	"github.com/KirkDiggler/chainbot/internal/models"
)

// Embed colours
const (
	ColorGold    = 0xf1c40f
	ColorGreen   = 0x2ecc71
	ColorRed     = 0xe74c3c
	ColorBlue    = 0x3498db
	ColorDarkRed = 0x992d22
	ColorGrey    = 0x95a5a6
)

// ErrorType names a user-facing failure
type ErrorType string

const (
	ErrorTypeChainExists     ErrorType = "chain_exists"
	ErrorTypeChainNotFound   ErrorType = "chain_not_found"
	ErrorTypeNotAuthorized   ErrorType = "not_authorized"
	ErrorTypeResponsesClosed ErrorType = "responses_closed"
	ErrorTypeInvalidTime     ErrorType = "invalid_time"
	ErrorTypeTimeNotInFuture ErrorType = "time_not_in_future"
	ErrorTypeTimeOutOfRange  ErrorType = "time_out_of_range"
	ErrorTypeUnknown         ErrorType = "unknown"
)

// EndReason mirrors why tracking finished
type EndReason string

const (
	EndReasonInactivity EndReason = "inactivity"
	EndReasonChainOver  EndReason = "chain_over"
	EndReasonErrors     EndReason = "errors"
)

// GetChainStatusMessageInput is the input for GetChainStatusMessage
type GetChainStatusMessageInput struct {
	Kind   models.ChainKind
	Status models.ChainStatus
}

// GetChainStatusMessageOutput is the output for GetChainStatusMessage
type GetChainStatusMessageOutput struct {
	Title       string
	Description string
	Color       int
}

// GetChainStartedMessageInput contains parameters for getting a started message
type GetChainStartedMessageInput struct {
	Kind models.ChainKind

	// ParticipantCount is the number of members that joined
	ParticipantCount int
}

// GetChainStartedMessageOutput contains the result of getting a started message
type GetChainStartedMessageOutput struct {
	Title string

	// Message is the randomized flavour line
	Message string
}

// GetChainEndedMessageInput contains parameters for getting an ended message
type GetChainEndedMessageInput struct {
	Reason EndReason

	// Current is the last observed chain counter
	Current int
}

// GetChainEndedMessageOutput contains the result of getting an ended message
type GetChainEndedMessageOutput struct {
	Title   string
	Message string
	Color   int
}

// GetAnnouncementMessageInput contains parameters for getting an announcement
type GetAnnouncementMessageInput struct {
	Purpose models.NotificationPurpose
}

// GetAnnouncementMessageOutput contains the result of getting an announcement
type GetAnnouncementMessageOutput struct {
	Title   string
	Message string
	Color   int
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	ErrorType ErrorType
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the random source; zero seeds from the current time
	Seed int64
}
