package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
	"github.com/KirkDiggler/chainbot/internal/services/chain"
	"github.com/KirkDiggler/chainbot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// RendererConfig holds configuration for the renderer
type RendererConfig struct {
	Session   Session
	Messaging messaging.Service
	Logger    *slog.Logger
}

// Renderer draws chains and watcher announcements as Discord messages
type Renderer struct {
	session   Session
	messaging messaging.Service
	logger    *slog.Logger
}

// NewRenderer creates a new renderer
func NewRenderer(cfg *RendererConfig) (*Renderer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Renderer{
		session:   cfg.Session,
		messaging: cfg.Messaging,
		logger:    logger.With("component", "discord_renderer"),
	}, nil
}

// SendChain posts the countdown message and returns its ID
func (r *Renderer) SendChain(ctx context.Context, c *models.Chain, remaining time.Duration) (string, error) {
	embed, err := r.countdown(ctx, c, remaining)
	if err != nil {
		return "", err
	}

	msg, err := r.session.ChannelMessageSendComplex(c.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: chainButtons(false),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to send chain message: %w", translateError(err))
	}

	return msg.ID, nil
}

// UpdateChain edits the countdown message
func (r *Renderer) UpdateChain(ctx context.Context, c *models.Chain, remaining time.Duration) error {
	embed, err := r.countdown(ctx, c, remaining)
	if err != nil {
		return err
	}

	return r.edit(ctx, c, embed, chainButtons(false))
}

// AnnounceStart disables responses and pings every joined member
func (r *Renderer) AnnounceStart(ctx context.Context, c *models.Chain) error {
	joined := c.Participants.Joined()

	started, err := r.messaging.GetChainStartedMessage(ctx, &messaging.GetChainStartedMessageInput{
		Kind:             c.Kind,
		ParticipantCount: len(joined),
	})
	if err != nil {
		return fmt.Errorf("failed to get started message: %w", err)
	}

	if err := r.edit(ctx, c, startedEmbed(c, started.Title, started.Message), chainButtons(true)); err != nil {
		return err
	}

	line := mentionLine(joined)
	if line == "" {
		return nil
	}

	users := make([]string, 0, len(joined))
	for _, u := range joined {
		users = append(users, u.ID)
	}

	_, err = r.session.ChannelMessageSendComplex(c.ChannelID, &discordgo.MessageSend{
		Content: line,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Users: users,
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send start mentions: %w", translateError(err))
	}

	return nil
}

// UpdateTracking shows live tracking progress
func (r *Renderer) UpdateTracking(ctx context.Context, c *models.Chain, status *chain.TrackingStatus) error {
	msg, err := r.messaging.GetChainStatusMessage(ctx, &messaging.GetChainStatusMessageInput{
		Kind:   c.Kind,
		Status: models.ChainStatusActive,
	})
	if err != nil {
		return fmt.Errorf("failed to get status message: %w", err)
	}

	return r.edit(ctx, c, trackingEmbed(c, status, msg.Title, msg.Description, msg.Color), []discordgo.MessageComponent{})
}

// Final shows the final leaderboard. Untracked chains keep their start message.
func (r *Renderer) Final(ctx context.Context, c *models.Chain, result *chain.TrackingResult) error {
	if result.Reason == chain.EndReasonUntracked {
		return nil
	}

	msg, err := r.messaging.GetChainEndedMessage(ctx, &messaging.GetChainEndedMessageInput{
		Reason:  messaging.EndReason(result.Reason),
		Current: result.Current,
	})
	if err != nil {
		return fmt.Errorf("failed to get ended message: %w", err)
	}

	return r.edit(ctx, c, finalEmbed(c, result, msg.Title, msg.Message, msg.Color), []discordgo.MessageComponent{})
}

// Cancelled shows the cancellation notice and disables responses
func (r *Renderer) Cancelled(ctx context.Context, c *models.Chain, by models.User) error {
	msg, err := r.messaging.GetChainStatusMessage(ctx, &messaging.GetChainStatusMessageInput{
		Kind:   c.Kind,
		Status: models.ChainStatusCancelled,
	})
	if err != nil {
		return fmt.Errorf("failed to get status message: %w", err)
	}

	return r.edit(ctx, c, cancelledEmbed(c, by, msg.Title, msg.Color), []discordgo.MessageComponent{})
}

// ChannelExists reports whether the channel can still be resolved
func (r *Renderer) ChannelExists(ctx context.Context, channelID string) (bool, error) {
	_, err := r.session.Channel(channelID, discordgo.WithContext(ctx))
	if err == nil {
		return true, nil
	}

	err = translateError(err)
	if errors.Is(err, chain.ErrChannelGone) {
		return false, nil
	}
	return false, fmt.Errorf("failed to look up channel %s: %w", channelID, err)
}

// AnnounceWar posts an upcoming war notice
func (r *Renderer) AnnounceWar(ctx context.Context, channelID string, war *models.War) error {
	msg, err := r.messaging.GetAnnouncementMessage(ctx, &messaging.GetAnnouncementMessageInput{
		Purpose: models.NotificationPurposeWar,
	})
	if err != nil {
		return fmt.Errorf("failed to get announcement message: %w", err)
	}

	return r.announce(ctx, channelID, warEmbed(war, msg.Title, msg.Message, msg.Color))
}

// AnnounceChain posts an ongoing chain notice
func (r *Renderer) AnnounceChain(ctx context.Context, channelID string, activity *models.Activity) error {
	msg, err := r.messaging.GetAnnouncementMessage(ctx, &messaging.GetAnnouncementMessageInput{
		Purpose: models.NotificationPurposeChain,
	})
	if err != nil {
		return fmt.Errorf("failed to get announcement message: %w", err)
	}

	return r.announce(ctx, channelID, activityEmbed(activity, msg.Title, msg.Message, msg.Color))
}

func (r *Renderer) countdown(ctx context.Context, c *models.Chain, remaining time.Duration) (*discordgo.MessageEmbed, error) {
	msg, err := r.messaging.GetChainStatusMessage(ctx, &messaging.GetChainStatusMessageInput{
		Kind:   c.Kind,
		Status: models.ChainStatusCountdown,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get status message: %w", err)
	}

	return countdownEmbed(c, remaining, msg.Title, msg.Description, msg.Color), nil
}

func (r *Renderer) edit(ctx context.Context, c *models.Chain, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	embeds := []*discordgo.MessageEmbed{embed}

	_, err := r.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         c.MessageID,
		Channel:    c.ChannelID,
		Embeds:     &embeds,
		Components: &components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to edit chain message %s: %w", c.MessageID, translateError(err))
	}

	return nil
}

func (r *Renderer) announce(ctx context.Context, channelID string, embed *discordgo.MessageEmbed) error {
	_, err := r.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send announcement: %w", translateError(err))
	}

	r.logger.Info("sent announcement", "channel_id", channelID, "title", embed.Title)
	return nil
}
