package discord

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KirkDiggler/chainbot/internal/models"
	"github.com/KirkDiggler/chainbot/internal/services/chain"
	"github.com/KirkDiggler/chainbot/internal/timeexpr"
	"github.com/bwmarrin/discordgo"
)

// Button IDs
const (
	ButtonChainJoin    = "chain_join"
	ButtonChainDecline = "chain_decline"
	ButtonChainCancel  = "chain_cancel"
)

// maxFieldLength is Discord's limit for an embed field value
const maxFieldLength = 1024

// chainButtons builds the response buttons of a chain message
func chainButtons(disabled bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Join",
					Style:    discordgo.SuccessButton,
					CustomID: ButtonChainJoin,
					Disabled: disabled,
					Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
				},
				discordgo.Button{
					Label:    "Can't make it",
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonChainDecline,
					Disabled: disabled,
					Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
				},
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.DangerButton,
					CustomID: ButtonChainCancel,
					Disabled: disabled,
					Emoji:    &discordgo.ComponentEmoji{Name: "🛑"},
				},
			},
		},
	}
}

// countdownEmbed renders a chain that is still collecting responses
func countdownEmbed(c *models.Chain, remaining time.Duration, title, description string, color int) *discordgo.MessageEmbed {
	joined := c.Participants.Joined()
	declined := c.Participants.Declined()

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Chain Start Time",
				Value: fmt.Sprintf("<t:%d:F>\nChain starts in: %s", c.EndTime.Unix(), timeexpr.FormatRemaining(remaining)),
			},
			{
				Name:   fmt.Sprintf("Participants (%d)", len(joined)),
				Value:  userList(joined, "No one yet"),
				Inline: true,
			},
			{
				Name:   fmt.Sprintf("Can't Make It (%d)", len(declined)),
				Value:  userList(declined, "None"),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Chain organized by %s", c.Organizer.Name),
		},
	}
}

// startedEmbed renders the end of the countdown
func startedEmbed(c *models.Chain, title, message string) *discordgo.MessageEmbed {
	joined := c.Participants.Joined()

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       0x2ecc71,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  fmt.Sprintf("Final Participants (%d)", len(joined)),
				Value: userList(joined, "No one signed up"),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Chain organized by %s", c.Organizer.Name),
		},
	}
}

// mentionLine pings every joined member; empty when nobody joined
func mentionLine(users []models.User) string {
	if len(users) == 0 {
		return ""
	}

	mentions := make([]string, 0, len(users))
	for _, u := range users {
		mentions = append(mentions, "<@"+u.ID+">")
	}
	return "🔔 Chain is starting! " + strings.Join(mentions, " ")
}

// trackingEmbed renders live tracking progress
func trackingEmbed(c *models.Chain, status *chain.TrackingStatus, title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Chain",
				Value:  fmt.Sprintf("%d", status.Current),
				Inline: true,
			},
			{
				Name:   "No new hits for",
				Value:  timeexpr.FormatRemaining(status.Inactive),
				Inline: true,
			},
			{
				Name:  "Leaderboard",
				Value: leaderboardText(status.Leaderboard),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Chain organized by %s", c.Organizer.Name),
		},
	}
}

// finalEmbed renders the final leaderboard of a tracked chain
func finalEmbed(c *models.Chain, result *chain.TrackingResult, title, message string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Final Leaderboard",
				Value: leaderboardText(result.Leaderboard),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Chain organized by %s", c.Organizer.Name),
		},
	}
}

// cancelledEmbed renders a cancelled chain
func cancelledEmbed(c *models.Chain, by models.User, title string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("This chain was cancelled by %s.", by.Name),
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Chain organized by %s", c.Organizer.Name),
		},
	}
}

// warEmbed renders an upcoming ranked war announcement
func warEmbed(war *models.War, title, message string, color int) *discordgo.MessageEmbed {
	factions := make([]string, 0, len(war.Factions))
	for _, f := range war.Factions {
		factions = append(factions, f.Name)
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:  "Starts",
			Value: fmt.Sprintf("<t:%d:F> (<t:%d:R>)", war.Start.Unix(), war.Start.Unix()),
		},
	}
	if len(factions) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Factions",
			Value: strings.Join(factions, " vs "),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       color,
		Fields:      fields,
	}
}

// activityEmbed renders an ongoing chain announcement
func activityEmbed(activity *models.Activity, title, message string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Chain",
				Value:  fmt.Sprintf("%d", activity.Current),
				Inline: true,
			},
			{
				Name:   "Timeout",
				Value:  timeexpr.FormatRemaining(activity.Timeout),
				Inline: true,
			},
		},
	}
}

// userList renders one name per line
func userList(users []models.User, empty string) string {
	if len(users) == 0 {
		return empty
	}

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}
	return truncate(strings.Join(names, "\n"))
}

// leaderboardText renders ranked leaderboard lines with a footer for omitted actors
func leaderboardText(lb *models.Leaderboard) string {
	if lb == nil || len(lb.Entries) == 0 {
		return "No hits recorded yet"
	}

	var sb strings.Builder
	for i, e := range lb.Entries {
		fmt.Fprintf(&sb, "%d. **%s**: %d (mugs %d, leaves %d, other %d)\n",
			i+1, e.ActorName, e.Total(), e.Mugs, e.Leaves, e.Others)
	}
	if lb.Omitted > 0 {
		fmt.Fprintf(&sb, "...and %d more", lb.Omitted)
	}

	return truncate(strings.TrimRight(sb.String(), "\n"))
}

func truncate(s string) string {
	if len(s) <= maxFieldLength {
		return s
	}
	cut := s[:maxFieldLength-3]
	for !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut + "..."
}
