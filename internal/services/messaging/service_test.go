package messaging

import (
	"context"
	"testing"

	"github.com/KirkDiggler/chainbot/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	svc Service
	ctx context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestNewServiceRequiresConfig() {
	_, err := NewService(nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestChainStatusMessage() {
	testCases := []struct {
		name   string
		kind   models.ChainKind
		status models.ChainStatus
		title  string
		color  int
	}{
		{"plain countdown", models.ChainKindPlain, models.ChainStatusCountdown, "🔄 Upcoming Chain", ColorGold},
		{"war countdown", models.ChainKindWar, models.ChainStatusCountdown, "⚔️ Upcoming War Chain", ColorDarkRed},
		{"active", models.ChainKindPlain, models.ChainStatusActive, "🔗 Chain in Progress", ColorBlue},
		{"cancelled", models.ChainKindWar, models.ChainStatusCancelled, "🛑 Chain Cancelled", ColorRed},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.svc.GetChainStatusMessage(s.ctx, &GetChainStatusMessageInput{
				Kind:   tc.kind,
				Status: tc.status,
			})
			s.Require().NoError(err)
			s.Equal(tc.title, out.Title)
			s.Equal(tc.color, out.Color)
			s.NotEmpty(out.Description)
		})
	}

	_, err := s.svc.GetChainStatusMessage(s.ctx, &GetChainStatusMessageInput{Status: "bogus"})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestChainStartedMessage() {
	out, err := s.svc.GetChainStartedMessage(s.ctx, &GetChainStartedMessageInput{
		Kind:             models.ChainKindPlain,
		ParticipantCount: 3,
	})
	s.Require().NoError(err)
	s.Equal("🎯 Chain Starting!", out.Title)
	s.NotEmpty(out.Message)

	out, err = s.svc.GetChainStartedMessage(s.ctx, &GetChainStartedMessageInput{
		Kind:             models.ChainKindWar,
		ParticipantCount: 3,
	})
	s.Require().NoError(err)
	s.Equal("⚔️ War Chain Starting!", out.Title)
}

func (s *MessagingServiceTestSuite) TestChainEndedMessage() {
	out, err := s.svc.GetChainEndedMessage(s.ctx, &GetChainEndedMessageInput{
		Reason:  EndReasonChainOver,
		Current: 250,
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "250")

	out, err = s.svc.GetChainEndedMessage(s.ctx, &GetChainEndedMessageInput{Reason: EndReasonErrors})
	s.Require().NoError(err)
	s.Contains(out.Message, "ended due to errors")

	_, err = s.svc.GetChainEndedMessage(s.ctx, &GetChainEndedMessageInput{Reason: "bogus"})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestAnnouncementMessage() {
	out, err := s.svc.GetAnnouncementMessage(s.ctx, &GetAnnouncementMessageInput{
		Purpose: models.NotificationPurposeWar,
	})
	s.Require().NoError(err)
	s.Equal("⚔️ Ranked War Scheduled", out.Title)

	_, err = s.svc.GetAnnouncementMessage(s.ctx, &GetAnnouncementMessageInput{Purpose: "bogus"})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestErrorMessageFallsBack() {
	out, err := s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: "bogus"})
	s.Require().NoError(err)
	s.NotEmpty(out.Message)

	out, err = s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: ErrorTypeInvalidTime})
	s.Require().NoError(err)
	s.Contains(out.Message, "18:00tc")
}
