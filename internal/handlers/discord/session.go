package discord

//go:generate mockgen -package=mocks -destination=mocks/mock_session.go github.com/KirkDiggler/chainbot/internal/handlers/discord Session

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/chainbot/internal/services/chain"
	"github.com/bwmarrin/discordgo"
)

// Session is the part of the Discord REST API used to draw chains.
// *discordgo.Session satisfies it.
type Session interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(edit *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// NewSession creates a bot session for the given token
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	return session, nil
}

// translateError maps deleted message and channel responses to chain errors
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownMessage:
			return fmt.Errorf("%w: %s", chain.ErrMessageGone, restErr.Message.Message)
		case discordgo.ErrCodeUnknownChannel:
			return fmt.Errorf("%w: %s", chain.ErrChannelGone, restErr.Message.Message)
		}
	}
	return err
}
