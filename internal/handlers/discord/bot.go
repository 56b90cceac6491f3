package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/chainbot/internal/repositories/notify"
	"github.com/KirkDiggler/chainbot/internal/services/chain"
	"github.com/KirkDiggler/chainbot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	chainCmd    *ChainCommand
	responder   chain.Responder
	messaging   messaging.Service
	adminRoleID string
	config      *Config
	logger      *slog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the Discord session, see NewSession
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// AdminRoleID grants admin rights in addition to server permissions
	AdminRoleID string

	ChainService  chain.Service
	Notifications notify.Repository
	Messaging     messaging.Service
	Logger        *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	chainCmd, err := NewChainCommand(&ChainCommandConfig{
		ChainService:  cfg.ChainService,
		Notifications: cfg.Notifications,
		Messaging:     cfg.Messaging,
		AdminRoleID:   cfg.AdminRoleID,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chain command: %w", err)
	}

	bot := &Bot{
		session:     cfg.Session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		chainCmd:    chainCmd,
		responder:   cfg.ChainService,
		messaging:   cfg.Messaging,
		adminRoleID: cfg.AdminRoleID,
		config:      cfg,
		logger:      logger.With("component", "discord_bot"),
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.chainCmd); err != nil {
		return fmt.Errorf("failed to register chain command: %w", err)
	}

	b.logger.Info("bot is running")
	return nil
}

// Stop removes registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.applicationID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "command_id", cmdID, "error", err)
		} else {
			b.logger.Info("deleted command", "command", cmdName, "command_id", cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	scope := "global"
	if b.config.GuildID != "" {
		scope = b.config.GuildID
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.applicationID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command", "command", cmd.GetName(), "command_id", createdCmd.ID, "scope", scope)

	return nil
}

func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("failed to handle command", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID

		ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
		defer cancel()

		r := b.handleButton(ctx, newInvocation(i, b.adminRoleID), customID)
		if err := respond(s, i, r); err != nil {
			b.logger.Error("failed to respond to button", "custom_id", customID, "error", err)
		}
	}
}

// handleButton routes a chain message button to the responder
func (b *Bot) handleButton(ctx context.Context, inv *invocation, customID string) *reply {
	logger := b.logger.With("custom_id", customID, "channel_id", inv.ChannelID, "user_id", inv.User.ID)

	var (
		r   *reply
		err error
	)
	switch customID {
	case ButtonChainJoin:
		var out *chain.RespondOutput
		out, err = b.responder.OnJoin(ctx, &chain.RespondInput{ChannelID: inv.ChannelID, User: inv.User})
		if err == nil {
			r = ephemeral("You're in! ✅")
			if !out.Changed {
				r = ephemeral("You're already on the list.")
			}
		}
	case ButtonChainDecline:
		var out *chain.RespondOutput
		out, err = b.responder.OnDecline(ctx, &chain.RespondInput{ChannelID: inv.ChannelID, User: inv.User})
		if err == nil {
			r = ephemeral("Got it, you can't make it. ❌")
			if !out.Changed {
				r = ephemeral("You're already marked as can't make it.")
			}
		}
	case ButtonChainCancel:
		_, err = b.responder.OnCancelRequest(ctx, &chain.CancelInput{
			ChannelID: inv.ChannelID,
			User:      inv.User,
			IsAdmin:   inv.IsAdmin,
		})
		if err == nil {
			r = ephemeral("Chain cancelled.")
		}
	default:
		err = fmt.Errorf("unknown button %q", customID)
	}

	if err != nil {
		if errorType(err) == messaging.ErrorTypeUnknown {
			logger.Error("button failed", "error", err)
		} else {
			logger.Info("button rejected", "error", err)
		}
		return errorReply(ctx, b.messaging, err)
	}
	return r
}
