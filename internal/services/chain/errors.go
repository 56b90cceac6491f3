package chain

import (
	"errors"

	"github.com/KirkDiggler/chainbot/internal/models"
)

// ChainError is a custom error type for chain-related errors
type ChainError string

// Error implements the error interface
func (e ChainError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrChainExists      ChainError = "a chain is already running in this channel"
	ErrChainNotFound    ChainError = "no chain is running in this channel"
	ErrNotAuthorized    ChainError = "only the organizer or an admin can cancel this chain"
	ErrResponsesClosed  ChainError = "this chain is no longer accepting responses"
	ErrMessageGone      ChainError = "chain message no longer exists"
	ErrChannelGone      ChainError = "chain channel no longer exists"
	ErrShutdown         ChainError = "chain service is shutting down"
	ErrNilConfig        ChainError = "config cannot be nil"
	ErrNilRepository    ChainError = "chain repository cannot be nil"
	ErrNilRenderer      ChainError = "renderer cannot be nil"
	ErrNilClock         ChainError = "clock cannot be nil"
	ErrNilUUIDGenerator ChainError = "UUID generator cannot be nil"
	ErrInvalidInterval  ChainError = "intervals must be positive and countdown intervals at most 30s"
	ErrMissingChannelID ChainError = "channel ID is required"
	ErrMissingUser      ChainError = "user ID is required"
	ErrUnknownChainKind ChainError = "unknown chain kind"
)

// isTargetGone reports whether a render failed because the message or channel was deleted
func isTargetGone(err error) bool {
	return errors.Is(err, ErrMessageGone) || errors.Is(err, ErrChannelGone)
}

// cancelRequest is the cancellation cause used when a member cancels a chain
type cancelRequest struct {
	by models.User
}

func (c *cancelRequest) Error() string {
	return "chain cancelled by " + c.by.Name
}
