package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// pick returns a random entry; rand.Rand is not safe for concurrent use
func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetChainStatusMessage returns the title, description and colour for a chain message
func (s *service) GetChainStatusMessage(ctx context.Context, input *GetChainStatusMessageInput) (*GetChainStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	war := input.Kind == models.ChainKindWar

	switch input.Status {
	case models.ChainStatusCountdown:
		if war {
			return &GetChainStatusMessageOutput{
				Title:       "⚔️ Upcoming War Chain",
				Description: "A war chain is being organized! Use the buttons below to let everyone know if you'll be there.",
				Color:       ColorDarkRed,
			}, nil
		}
		return &GetChainStatusMessageOutput{
			Title:       "🔄 Upcoming Chain",
			Description: "A new chain is being organized! Use the buttons below to indicate your participation.",
			Color:       ColorGold,
		}, nil
	case models.ChainStatusActive:
		return &GetChainStatusMessageOutput{
			Title:       "🔗 Chain in Progress",
			Description: "The chain is live. Keep those hits coming!",
			Color:       ColorBlue,
		}, nil
	case models.ChainStatusEnded:
		return &GetChainStatusMessageOutput{
			Title:       "🏁 Chain Finished",
			Description: "Tracking for this chain has finished.",
			Color:       ColorGrey,
		}, nil
	case models.ChainStatusCancelled:
		return &GetChainStatusMessageOutput{
			Title:       "🛑 Chain Cancelled",
			Description: "This chain was cancelled.",
			Color:       ColorRed,
		}, nil
	}

	return nil, fmt.Errorf("unknown chain status %q", input.Status)
}

// GetChainStartedMessage returns a randomized message for when the countdown is over
func (s *service) GetChainStartedMessage(ctx context.Context, input *GetChainStartedMessageInput) (*GetChainStartedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	title := "🎯 Chain Starting!"
	var messages []string

	switch {
	case input.ParticipantCount == 0:
		messages = []string{
			"Time's up! Nobody signed up, but the chain is starting anyway.",
			"The chain is starting now! Empty roster, full potential.",
			"Time's up! Anyone around can still jump in.",
		}
	case input.Kind == models.ChainKindWar:
		title = "⚔️ War Chain Starting!"
		messages = []string{
			"Time's up! The war chain is starting now!",
			"To arms! The war chain starts now.",
			"Time's up! Hit hard, hit often, keep that timer alive.",
			"The war chain is on! Don't let it drop.",
		}
	default:
		messages = []string{
			"Time's up! The chain is starting now!",
			"Here we go! Start hitting, the chain is on.",
			"Time's up! Keep an eye on that timer.",
			"The chain is live! Every hit counts.",
			"Countdown over. Let's build that chain!",
		}
	}

	return &GetChainStartedMessageOutput{
		Title:   title,
		Message: s.pick(messages),
	}, nil
}

// GetChainEndedMessage returns a message for when tracking finished
func (s *service) GetChainEndedMessage(ctx context.Context, input *GetChainEndedMessageInput) (*GetChainEndedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch input.Reason {
	case EndReasonInactivity:
		return &GetChainEndedMessageOutput{
			Title:   "💤 Chain Tracking Stopped",
			Message: fmt.Sprintf("No new hits for a while. Tracking stopped at %d.", input.Current),
			Color:   ColorGrey,
		}, nil
	case EndReasonChainOver:
		return &GetChainEndedMessageOutput{
			Title:   "🏁 Chain Over",
			Message: fmt.Sprintf("The chain ended at %d hits.", input.Current),
			Color:   ColorGreen,
		}, nil
	case EndReasonErrors:
		return &GetChainEndedMessageOutput{
			Title:   "⚠️ Chain Tracking Stopped",
			Message: "Tracking ended due to errors talking to the game API.",
			Color:   ColorRed,
		}, nil
	}

	return nil, fmt.Errorf("unknown end reason %q", input.Reason)
}

// GetAnnouncementMessage returns a message for a watcher announcement
func (s *service) GetAnnouncementMessage(ctx context.Context, input *GetAnnouncementMessageInput) (*GetAnnouncementMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch input.Purpose {
	case models.NotificationPurposeWar:
		message := s.pick([]string{
			"A ranked war has been scheduled. Plan your energy!",
			"War incoming! Get ready.",
			"A new ranked war is on the calendar.",
		})
		return &GetAnnouncementMessageOutput{
			Title:   "⚔️ Ranked War Scheduled",
			Message: message,
			Color:   ColorDarkRed,
		}, nil
	case models.NotificationPurposeChain:
		message := s.pick([]string{
			"A faction chain is running. Jump in and keep it alive!",
			"The chain is on! Grab a target.",
			"Chain in progress. Every hit counts.",
		})
		return &GetAnnouncementMessageOutput{
			Title:   "🔗 Chain Running",
			Message: message,
			Color:   ColorBlue,
		}, nil
	}

	return nil, fmt.Errorf("unknown notification purpose %q", input.Purpose)
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string

	// Select messages based on error type
	switch input.ErrorType {
	case ErrorTypeChainExists:
		messages = []string{
			"There's already an active chain in this channel!",
			"One chain at a time! This channel already has one going.",
		}
	case ErrorTypeChainNotFound:
		messages = []string{
			"There's no active chain in this channel.",
			"Nothing to see here. There's no active chain in this channel.",
		}
	case ErrorTypeNotAuthorized:
		messages = []string{
			"Only the organizer or an admin can do that.",
			"Nice try! Only the organizer or an admin can do that.",
		}
	case ErrorTypeResponsesClosed:
		messages = []string{
			"The countdown is over, responses are closed.",
			"Too late! This chain already started.",
		}
	case ErrorTypeInvalidTime:
		messages = []string{
			"I couldn't read that time. Use `2h`, `30m`, `18:00tc` or `18:00tc at 21.04.2025`.",
		}
	case ErrorTypeTimeNotInFuture:
		messages = []string{
			"That time is already in the past.",
		}
	case ErrorTypeTimeOutOfRange:
		messages = []string{
			"That time is out of range. Check the hours, minutes and date.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again later.",
			"Oops! Something broke. Try again in a moment.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
	}, nil
}
