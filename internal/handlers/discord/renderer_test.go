package discord

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/KirkDiggler/chainbot/internal/handlers/discord/mocks"
	"github.com/KirkDiggler/chainbot/internal/models"
	"github.com/KirkDiggler/chainbot/internal/services/chain"
	"github.com/KirkDiggler/chainbot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RendererTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockSession *mocks.MockSession
	renderer    *Renderer
	ctx         context.Context

	// Test data
	testChain *models.Chain
}

func (s *RendererTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSession = mocks.NewMockSession(s.mockCtrl)
	s.ctx = context.Background()

	msgs, err := messaging.NewService(&messaging.ServiceConfig{Seed: 7})
	s.Require().NoError(err)

	renderer, err := NewRenderer(&RendererConfig{
		Session:   s.mockSession,
		Messaging: msgs,
	})
	s.Require().NoError(err)
	s.renderer = renderer

	s.testChain = &models.Chain{
		ChannelID: "111111111111111111",
		MessageID: "999999999999999999",
		EndTime:   time.Date(2025, 4, 19, 13, 0, 0, 0, time.UTC),
		Organizer: models.User{ID: "1", Name: "Organizer"},
		Status:    models.ChainStatusCountdown,
		Kind:      models.ChainKindPlain,
		Participants: models.NewParticipants(
			[]models.User{{ID: "2", Name: "Alice"}, {ID: "3", Name: "Bob"}},
			[]models.User{{ID: "4", Name: "Carol"}},
		),
	}
}

func (s *RendererTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRendererSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}

func restError(code int) error {
	return &discordgo.RESTError{
		Response:     &http.Response{StatusCode: http.StatusNotFound, Status: "404 Not Found"},
		ResponseBody: []byte(`{"message":"Unknown"}`),
		Message:      &discordgo.APIErrorMessage{Code: code, Message: "Unknown"},
	}
}

func buttons(components []discordgo.MessageComponent) []discordgo.Button {
	var out []discordgo.Button
	for _, c := range components {
		row, ok := c.(discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, b := range row.Components {
			if btn, ok := b.(discordgo.Button); ok {
				out = append(out, btn)
			}
		}
	}
	return out
}

func (s *RendererTestSuite) TestSendChain() {
	s.mockSession.EXPECT().
		ChannelMessageSendComplex(s.testChain.ChannelID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Require().Len(data.Embeds, 1)
			embed := data.Embeds[0]
			s.Equal("🔄 Upcoming Chain", embed.Title)
			s.Contains(embed.Fields[0].Value, "Chain starts in: 1h 2m 3s")
			s.Equal("Participants (2)", embed.Fields[1].Name)
			s.Equal("Alice\nBob", embed.Fields[1].Value)
			s.Equal("Can't Make It (1)", embed.Fields[2].Name)
			s.Equal("Chain organized by Organizer", embed.Footer.Text)

			btns := buttons(data.Components)
			s.Require().Len(btns, 3)
			s.Equal(ButtonChainJoin, btns[0].CustomID)
			s.Equal(ButtonChainDecline, btns[1].CustomID)
			s.Equal(ButtonChainCancel, btns[2].CustomID)
			s.False(btns[0].Disabled)

			return &discordgo.Message{ID: "999999999999999999"}, nil
		})

	id, err := s.renderer.SendChain(s.ctx, s.testChain, time.Hour+2*time.Minute+3*time.Second)

	s.Require().NoError(err)
	s.Equal("999999999999999999", id)
}

func (s *RendererTestSuite) TestSendChainWarVariant() {
	s.testChain.Kind = models.ChainKindWar
	s.mockSession.EXPECT().
		ChannelMessageSendComplex(s.testChain.ChannelID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("⚔️ Upcoming War Chain", data.Embeds[0].Title)
			s.Equal(messaging.ColorDarkRed, data.Embeds[0].Color)
			return &discordgo.Message{ID: "1"}, nil
		})

	_, err := s.renderer.SendChain(s.ctx, s.testChain, time.Minute)

	s.Require().NoError(err)
}

func (s *RendererTestSuite) TestUpdateChainMessageGone() {
	s.mockSession.EXPECT().
		ChannelMessageEditComplex(gomock.Any(), gomock.Any()).
		Return(nil, restError(discordgo.ErrCodeUnknownMessage))

	err := s.renderer.UpdateChain(s.ctx, s.testChain, time.Minute)

	s.ErrorIs(err, chain.ErrMessageGone)
}

func (s *RendererTestSuite) TestUpdateChainChannelGone() {
	s.mockSession.EXPECT().
		ChannelMessageEditComplex(gomock.Any(), gomock.Any()).
		Return(nil, restError(discordgo.ErrCodeUnknownChannel))

	err := s.renderer.UpdateChain(s.ctx, s.testChain, time.Minute)

	s.ErrorIs(err, chain.ErrChannelGone)
}

func (s *RendererTestSuite) TestUpdateChainTransientError() {
	s.mockSession.EXPECT().
		ChannelMessageEditComplex(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	err := s.renderer.UpdateChain(s.ctx, s.testChain, time.Minute)

	s.Error(err)
	s.NotErrorIs(err, chain.ErrMessageGone)
}

func (s *RendererTestSuite) TestAnnounceStartPingsJoiners() {
	gomock.InOrder(
		s.mockSession.EXPECT().
			ChannelMessageEditComplex(gomock.Any(), gomock.Any()).
			DoAndReturn(func(edit *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
				s.Equal(s.testChain.MessageID, edit.ID)
				s.Equal(s.testChain.ChannelID, edit.Channel)
				embed := (*edit.Embeds)[0]
				s.Equal("🎯 Chain Starting!", embed.Title)
				s.Equal("Final Participants (2)", embed.Fields[0].Name)
				for _, btn := range buttons(*edit.Components) {
					s.True(btn.Disabled)
				}
				return &discordgo.Message{}, nil
			}),
		s.mockSession.EXPECT().
			ChannelMessageSendComplex(s.testChain.ChannelID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
				s.Equal("🔔 Chain is starting! <@2> <@3>", data.Content)
				s.Equal([]string{"2", "3"}, data.AllowedMentions.Users)
				return &discordgo.Message{}, nil
			}),
	)

	s.Require().NoError(s.renderer.AnnounceStart(s.ctx, s.testChain))
}

func (s *RendererTestSuite) TestAnnounceStartWithoutJoinersSkipsMentions() {
	s.testChain.Participants = models.NewParticipants(nil, nil)
	s.mockSession.EXPECT().
		ChannelMessageEditComplex(gomock.Any(), gomock.Any()).
		Return(&discordgo.Message{}, nil)

	s.Require().NoError(s.renderer.AnnounceStart(s.ctx, s.testChain))
}

func (s *RendererTestSuite) TestUpdateTracking() {
	s.mockSession.EXPECT().
		ChannelMessageEditComplex(gomock.Any(), gomock.Any()).
		DoAndReturn(func(edit *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			embed := (*edit.Embeds)[0]
			s.Equal("🔗 Chain in Progress", embed.Title)
			s.Equal("42", embed.Fields[0].Value)
			s.Equal("1m 30s", embed.Fields[1].Value)
			s.Contains(embed.Fields[2].Value, "1. **Alice**: 3 (mugs 1, leaves 1, other 1)")
			s.Empty(*edit.Components)
			return &discordgo.Message{}, nil
		})

	err := s.renderer.UpdateTracking(s.ctx, s.testChain, &chain.TrackingStatus{
		Current:  42,
		Inactive: 90 * time.Second,
		Leaderboard: &models.Leaderboard{
			Entries: []*models.LeaderboardEntry{
				{ActorID: "10", ActorName: "Alice", Mugs: 1, Leaves: 1, Others: 1},
			},
		},
	})

	s.Require().NoError(err)
}

func (s *RendererTestSuite) TestFinalRendersReason() {
	s.mockSession.EXPECT().
		ChannelMessageEditComplex(gomock.Any(), gomock.Any()).
		DoAndReturn(func(edit *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			embed := (*edit.Embeds)[0]
			s.Contains(embed.Description, "ended due to errors")
			s.Equal("Final Leaderboard", embed.Fields[0].Name)
			s.Equal("No hits recorded yet", embed.Fields[0].Value)
			return &discordgo.Message{}, nil
		})

	err := s.renderer.Final(s.ctx, s.testChain, &chain.TrackingResult{
		Reason:      chain.EndReasonErrors,
		Leaderboard: &models.Leaderboard{},
	})

	s.Require().NoError(err)
}

func (s *RendererTestSuite) TestFinalUntrackedKeepsStartMessage() {
	err := s.renderer.Final(s.ctx, s.testChain, &chain.TrackingResult{Reason: chain.EndReasonUntracked})

	s.NoError(err)
}

func (s *RendererTestSuite) TestCancelled() {
	s.mockSession.EXPECT().
		ChannelMessageEditComplex(gomock.Any(), gomock.Any()).
		DoAndReturn(func(edit *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			embed := (*edit.Embeds)[0]
			s.Equal("🛑 Chain Cancelled", embed.Title)
			s.Equal("This chain was cancelled by Admin.", embed.Description)
			return &discordgo.Message{}, nil
		})

	err := s.renderer.Cancelled(s.ctx, s.testChain, models.User{ID: "5", Name: "Admin"})

	s.Require().NoError(err)
}

func (s *RendererTestSuite) TestChannelExists() {
	s.mockSession.EXPECT().Channel("1", gomock.Any()).Return(&discordgo.Channel{ID: "1"}, nil)
	s.mockSession.EXPECT().Channel("2", gomock.Any()).Return(nil, restError(discordgo.ErrCodeUnknownChannel))
	s.mockSession.EXPECT().Channel("3", gomock.Any()).Return(nil, errors.New("timeout"))

	exists, err := s.renderer.ChannelExists(s.ctx, "1")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.renderer.ChannelExists(s.ctx, "2")
	s.Require().NoError(err)
	s.False(exists)

	_, err = s.renderer.ChannelExists(s.ctx, "3")
	s.Error(err)
}

func (s *RendererTestSuite) TestAnnounceWar() {
	war := &models.War{
		ID:    "100",
		Start: time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC),
		Factions: []models.Faction{
			{ID: "1", Name: "Home"},
			{ID: "2", Name: "Away"},
		},
	}
	s.mockSession.EXPECT().
		ChannelMessageSendComplex("555", gomock.Any(), gomock.Any()).
		DoAndReturn(func(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			embed := data.Embeds[0]
			s.Equal("⚔️ Ranked War Scheduled", embed.Title)
			s.Contains(embed.Fields[0].Value, "<t:1745150400:F>")
			s.Equal("Home vs Away", embed.Fields[1].Value)
			return &discordgo.Message{}, nil
		})

	s.Require().NoError(s.renderer.AnnounceWar(s.ctx, "555", war))
}

func (s *RendererTestSuite) TestAnnounceChain() {
	s.mockSession.EXPECT().
		ChannelMessageSendComplex("666", gomock.Any(), gomock.Any()).
		DoAndReturn(func(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("🔗 Chain Running", data.Embeds[0].Title)
			s.Equal("25", data.Embeds[0].Fields[0].Value)
			return &discordgo.Message{}, nil
		})

	err := s.renderer.AnnounceChain(s.ctx, "666", &models.Activity{ChainID: "1", Current: 25, Timeout: 2 * time.Minute})

	s.Require().NoError(err)
}
