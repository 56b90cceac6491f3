package models

import (
	"time"
)

// ChainStatus represents the current state of a chain
type ChainStatus string

const (
	// ChainStatusCountdown indicates the chain is counting down and collecting responses
	ChainStatusCountdown ChainStatus = "countdown"

	// ChainStatusActive indicates the deadline passed and external activity is being tracked
	ChainStatusActive ChainStatus = "active"

	// ChainStatusEnded indicates tracking finished
	ChainStatusEnded ChainStatus = "ended"

	// ChainStatusCancelled indicates the organizer or an admin cancelled the chain
	ChainStatusCancelled ChainStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are possible
func (s ChainStatus) IsTerminal() bool {
	return s == ChainStatusEnded || s == ChainStatusCancelled
}

// IsValid reports whether s is one of the known statuses
func (s ChainStatus) IsValid() bool {
	switch s {
	case ChainStatusCountdown, ChainStatusActive, ChainStatusEnded, ChainStatusCancelled:
		return true
	}
	return false
}

// ChainKind distinguishes the rendering variant of a chain
type ChainKind string

const (
	// ChainKindPlain is a regular chain
	ChainKindPlain ChainKind = "plain"

	// ChainKindWar is a chain organized for a ranked war
	ChainKindWar ChainKind = "war"
)

// User identifies a chat member
type User struct {
	// ID is the Discord user ID (a numeric snowflake)
	ID string

	// Name is the display name at the time of the response
	Name string
}

// Chain represents a time-boxed participation session in a channel
type Chain struct {
	// ChannelID is the Discord channel the chain lives in, and its primary key
	ChannelID string

	// GuildID is the Discord server the channel belongs to
	GuildID string

	// MessageID is the ID of the rendered chain message that is edited in place
	MessageID string

	// EndTime is the UTC instant the countdown phase ends
	EndTime time.Time

	// CreatedAt is when the chain was created
	CreatedAt time.Time

	// Organizer is the member that created the chain
	Organizer User

	// Status is the current lifecycle state
	Status ChainStatus

	// Kind selects the rendering variant
	Kind ChainKind

	// Participants holds the joined and declined members
	Participants *Participants
}

// Remaining returns the countdown time left at now, never negative
func (c *Chain) Remaining(now time.Time) time.Duration {
	remaining := c.EndTime.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// AcceptsResponses reports whether members can still join or decline
func (c *Chain) AcceptsResponses() bool {
	return c.Status == ChainStatusCountdown
}

// IsOrganizer reports whether userID created the chain
func (c *Chain) IsOrganizer(userID string) bool {
	return userID != "" && c.Organizer.ID == userID
}

// Clone returns a deep copy that can be handed to other goroutines
func (c *Chain) Clone() *Chain {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Participants = c.Participants.Clone()
	return &clone
}
