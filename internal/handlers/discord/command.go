package discord

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
	"github.com/KirkDiggler/chainbot/internal/services/chain"
	"github.com/KirkDiggler/chainbot/internal/services/messaging"
	"github.com/KirkDiggler/chainbot/internal/timeexpr"
	"github.com/bwmarrin/discordgo"
)

// interactionTimeout bounds the work done for one interaction
const interactionTimeout = 10 * time.Second

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// invocation is who triggered an interaction and where
type invocation struct {
	ChannelID string
	GuildID   string
	User      models.User
	IsAdmin   bool
}

// newInvocation extracts the caller from an interaction.
// Members with Administrator, Manage Server or the admin role count as admins.
func newInvocation(i *discordgo.InteractionCreate, adminRoleID string) *invocation {
	inv := &invocation{
		ChannelID: i.ChannelID,
		GuildID:   i.GuildID,
	}

	if i.Member != nil && i.Member.User != nil {
		inv.User = models.User{ID: i.Member.User.ID, Name: displayName(i.Member.User)}
		if i.Member.Nick != "" {
			inv.User.Name = i.Member.Nick
		}
		perms := i.Member.Permissions
		inv.IsAdmin = perms&discordgo.PermissionAdministrator != 0 ||
			perms&discordgo.PermissionManageServer != 0 ||
			(adminRoleID != "" && slices.Contains(i.Member.Roles, adminRoleID))
	} else if i.User != nil {
		inv.User = models.User{ID: i.User.ID, Name: displayName(i.User)}
	}

	return inv
}

func displayName(u *discordgo.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// reply is the response to an interaction
type reply struct {
	Content   string
	Embed     *discordgo.MessageEmbed
	Ephemeral bool
}

// ephemeral creates a reply only the caller can see
func ephemeral(content string) *reply {
	return &reply{Content: content, Ephemeral: true}
}

// respond sends a reply to an interaction
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, r *reply) error {
	data := &discordgo.InteractionResponseData{
		Content: r.Content,
	}
	if r.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{r.Embed}
	}
	if r.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// errorType maps service errors to user-facing error categories
func errorType(err error) messaging.ErrorType {
	switch {
	case errors.Is(err, chain.ErrChainExists):
		return messaging.ErrorTypeChainExists
	case errors.Is(err, chain.ErrChainNotFound):
		return messaging.ErrorTypeChainNotFound
	case errors.Is(err, chain.ErrNotAuthorized):
		return messaging.ErrorTypeNotAuthorized
	case errors.Is(err, chain.ErrResponsesClosed):
		return messaging.ErrorTypeResponsesClosed
	case errors.Is(err, timeexpr.ErrNotInFuture):
		return messaging.ErrorTypeTimeNotInFuture
	case errors.Is(err, timeexpr.ErrOutOfRange):
		return messaging.ErrorTypeTimeOutOfRange
	case errors.Is(err, timeexpr.ErrInvalidFormat):
		return messaging.ErrorTypeInvalidTime
	}
	return messaging.ErrorTypeUnknown
}

// errorReply renders err for the caller; unexpected errors fall back to a generic message
func errorReply(ctx context.Context, msgs messaging.Service, err error) *reply {
	out, msgErr := msgs.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType(err),
	})
	if msgErr != nil {
		return ephemeral("Something went wrong! Try again later.")
	}
	return ephemeral(out.Message)
}
