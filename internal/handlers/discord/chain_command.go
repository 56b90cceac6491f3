package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/chainbot/internal/models"
	"github.com/KirkDiggler/chainbot/internal/repositories/notify"
	"github.com/KirkDiggler/chainbot/internal/services/chain"
	"github.com/KirkDiggler/chainbot/internal/services/messaging"
	"github.com/KirkDiggler/chainbot/internal/timeexpr"
	"github.com/bwmarrin/discordgo"
)

// Subcommands
const (
	SubcommandStart  = "start"
	SubcommandWar    = "war"
	SubcommandCancel = "cancel"
	SubcommandStatus = "status"
	SubcommandNotify = "notify"
)

// ChainCommandConfig holds configuration for the chain command
type ChainCommandConfig struct {
	ChainService  chain.Service
	Notifications notify.Repository
	Messaging     messaging.Service

	// AdminRoleID grants admin rights in addition to server permissions
	AdminRoleID string
	Logger      *slog.Logger
}

// ChainCommand handles the /chain command
type ChainCommand struct {
	BaseCommand
	chains      chain.Service
	notify      notify.Repository
	messaging   messaging.Service
	adminRoleID string
	logger      *slog.Logger
}

// NewChainCommand creates a new chain command handler
func NewChainCommand(cfg *ChainCommandConfig) (*ChainCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.ChainService == nil {
		return nil, errors.New("chain service cannot be nil")
	}
	if cfg.Notifications == nil {
		return nil, errors.New("notification repository cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	timeOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "time",
		Description: "When the chain starts: 2h, 30m, 18:00tc or 18:00tc at 21.04.2025",
		Required:    true,
	}

	return &ChainCommand{
		BaseCommand: BaseCommand{
			Name:        "chain",
			Description: "Organize faction chains",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStart,
					Description: "Organize a chain with a countdown timer",
					Options:     []*discordgo.ApplicationCommandOption{timeOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandWar,
					Description: "Organize a war chain with a countdown timer",
					Options:     []*discordgo.ApplicationCommandOption{timeOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandCancel,
					Description: "Cancel the chain in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStatus,
					Description: "Show the chain in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandNotify,
					Description: "Set where chain and war announcements are posted",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "purpose",
							Description: "Which announcements to route",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Ongoing chains", Value: string(models.NotificationPurposeChain)},
								{Name: "Upcoming wars", Value: string(models.NotificationPurposeWar)},
							},
						},
						{
							Type:         discordgo.ApplicationCommandOptionChannel,
							Name:         "channel",
							Description:  "Destination channel; leave empty to disable",
							ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
						},
					},
				},
			},
		},
		chains:      cfg.ChainService,
		notify:      cfg.Notifications,
		messaging:   cfg.Messaging,
		adminRoleID: cfg.AdminRoleID,
		logger:      logger.With("component", "chain_command"),
	}, nil
}

// Handle processes a Discord interaction for the chain command
func (c *ChainCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	options := make(map[string]string, len(sub.Options))
	for _, opt := range sub.Options {
		// string and channel options both carry their value as a string
		if v, ok := opt.Value.(string); ok {
			options[opt.Name] = v
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	r := c.execute(ctx, newInvocation(i, c.adminRoleID), sub.Name, options)
	return respond(s, i, r)
}

// execute runs a subcommand and builds the reply
func (c *ChainCommand) execute(ctx context.Context, inv *invocation, subcommand string, options map[string]string) *reply {
	logger := c.logger.With("subcommand", subcommand, "channel_id", inv.ChannelID, "user_id", inv.User.ID)

	var (
		r   *reply
		err error
	)
	switch subcommand {
	case SubcommandStart:
		r, err = c.handleStart(ctx, inv, models.ChainKindPlain, options["time"])
	case SubcommandWar:
		r, err = c.handleStart(ctx, inv, models.ChainKindWar, options["time"])
	case SubcommandCancel:
		r, err = c.handleCancel(ctx, inv)
	case SubcommandStatus:
		r, err = c.handleStatus(ctx, inv)
	case SubcommandNotify:
		r, err = c.handleNotify(ctx, inv, options["purpose"], options["channel"])
	default:
		err = fmt.Errorf("unknown subcommand %q", subcommand)
	}

	if err != nil {
		if errorType(err) == messaging.ErrorTypeUnknown {
			logger.Error("command failed", "error", err)
		} else {
			logger.Info("command rejected", "error", err)
		}
		return errorReply(ctx, c.messaging, err)
	}
	return r
}

func (c *ChainCommand) handleStart(ctx context.Context, inv *invocation, kind models.ChainKind, expr string) (*reply, error) {
	out, err := c.chains.CreateChain(ctx, &chain.CreateChainInput{
		ChannelID:      inv.ChannelID,
		GuildID:        inv.GuildID,
		Organizer:      inv.User,
		Kind:           kind,
		TimeExpression: expr,
	})
	if err != nil {
		return nil, err
	}

	return ephemeral(fmt.Sprintf("Chain scheduled! It starts in %s.", timeexpr.FormatRemaining(out.Remaining))), nil
}

func (c *ChainCommand) handleCancel(ctx context.Context, inv *invocation) (*reply, error) {
	_, err := c.chains.OnCancelRequest(ctx, &chain.CancelInput{
		ChannelID: inv.ChannelID,
		User:      inv.User,
		IsAdmin:   inv.IsAdmin,
	})
	if err != nil {
		return nil, err
	}

	return ephemeral("Chain cancelled."), nil
}

func (c *ChainCommand) handleStatus(ctx context.Context, inv *invocation) (*reply, error) {
	out, err := c.chains.GetChain(ctx, &chain.GetChainInput{ChannelID: inv.ChannelID})
	if err != nil {
		return nil, err
	}

	ch := out.Chain
	switch ch.Status {
	case models.ChainStatusCountdown:
		return ephemeral(fmt.Sprintf("Chain starts in: %s. %d joined, %d can't make it.",
			timeexpr.FormatRemaining(out.Remaining),
			len(ch.Participants.Joined()),
			len(ch.Participants.Declined()))), nil
	case models.ChainStatusActive:
		if out.Tracking == nil {
			return ephemeral("The chain is active. Waiting for the first update."), nil
		}
		return ephemeral(fmt.Sprintf("The chain is active at %d hits. No new hits for %s.",
			out.Tracking.Current, timeexpr.FormatRemaining(out.Tracking.Inactive))), nil
	}

	return ephemeral(fmt.Sprintf("The chain is %s.", ch.Status)), nil
}

func (c *ChainCommand) handleNotify(ctx context.Context, inv *invocation, purpose, channelID string) (*reply, error) {
	if !inv.IsAdmin {
		return nil, chain.ErrNotAuthorized
	}

	_, err := c.notify.Set(ctx, &notify.SetInput{
		Purpose:   models.NotificationPurpose(purpose),
		ChannelID: channelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set %s notifications: %w", purpose, err)
	}

	c.logger.Info("notification destination changed", "purpose", purpose, "channel_id", channelID, "user_id", inv.User.ID)

	label := "Chain"
	if models.NotificationPurpose(purpose) == models.NotificationPurposeWar {
		label = "War"
	}
	if channelID == "" {
		return ephemeral(label + " announcements are disabled."), nil
	}
	return ephemeral(fmt.Sprintf("%s announcements will be posted in <#%s>.", label, channelID)), nil
}
