package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
	"github.com/KirkDiggler/chainbot/internal/services/chain"
	chainMocks "github.com/KirkDiggler/chainbot/internal/services/chain/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockChains *chainMocks.MockService
	router     http.Handler

	// Test data
	testChain *models.Chain
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockChains = chainMocks.NewMockService(s.mockCtrl)

	h, err := New(&Config{ChainService: s.mockChains})
	s.Require().NoError(err)
	s.router = h.Router()

	s.testChain = &models.Chain{
		ChannelID: "111111111111111111",
		GuildID:   "777777777777777777",
		MessageID: "999999999999999999",
		EndTime:   time.Date(2025, 4, 19, 12, 30, 0, 0, time.UTC),
		Organizer: models.User{ID: "1", Name: "Organizer"},
		Status:    models.ChainStatusCountdown,
		Kind:      models.ChainKindPlain,
		Participants: models.NewParticipants(
			[]models.User{{ID: "2", Name: "Alice"}},
			[]models.User{{ID: "3", Name: "Bob"}},
		),
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) serve(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *HandlerTestSuite) TestHealth() {
	s.mockChains.EXPECT().ListChains(gomock.Any()).
		Return(&chain.ListChainsOutput{Chains: []*models.Chain{s.testChain}}, nil)

	rr := s.serve("/health")

	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"status":"ok","chains":1}`, rr.Body.String())
}

func (s *HandlerTestSuite) TestHealthDegraded() {
	s.mockChains.EXPECT().ListChains(gomock.Any()).Return(nil, errors.New("boom"))

	rr := s.serve("/health")

	s.Equal(http.StatusServiceUnavailable, rr.Code)
}

func (s *HandlerTestSuite) TestListChains() {
	other := &models.Chain{ChannelID: "gone"}
	s.mockChains.EXPECT().ListChains(gomock.Any()).
		Return(&chain.ListChainsOutput{Chains: []*models.Chain{s.testChain, other}}, nil)
	s.mockChains.EXPECT().GetChain(gomock.Any(), &chain.GetChainInput{ChannelID: s.testChain.ChannelID}).
		Return(&chain.GetChainOutput{Chain: s.testChain, Remaining: 90 * time.Second}, nil)
	s.mockChains.EXPECT().GetChain(gomock.Any(), &chain.GetChainInput{ChannelID: "gone"}).
		Return(nil, chain.ErrChainNotFound)

	rr := s.serve("/chains")

	s.Require().Equal(http.StatusOK, rr.Code)
	var body struct {
		Chains []chainView `json:"chains"`
	}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	s.Require().Len(body.Chains, 1)
	s.Equal(s.testChain.ChannelID, body.Chains[0].ChannelID)
	s.Equal(int64(90), body.Chains[0].RemainingSeconds)
	s.Equal([]userView{{ID: "2", Name: "Alice"}}, body.Chains[0].Joined)
	s.Nil(body.Chains[0].Tracking)
}

func (s *HandlerTestSuite) TestGetChainWithTracking() {
	s.testChain.Status = models.ChainStatusActive
	s.mockChains.EXPECT().GetChain(gomock.Any(), &chain.GetChainInput{ChannelID: s.testChain.ChannelID}).
		Return(&chain.GetChainOutput{
			Chain:    s.testChain,
			Tracking: &chain.TrackingStatus{Current: 12, Inactive: 60 * time.Second},
		}, nil)

	rr := s.serve("/chains/" + s.testChain.ChannelID)

	s.Require().Equal(http.StatusOK, rr.Code)
	var view chainView
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &view))
	s.Equal("active", view.Status)
	s.Require().NotNil(view.Tracking)
	s.Equal(12, view.Tracking.Current)
	s.Equal(int64(60), view.Tracking.InactiveSeconds)
}

func (s *HandlerTestSuite) TestGetChainNotFound() {
	s.mockChains.EXPECT().GetChain(gomock.Any(), gomock.Any()).Return(nil, chain.ErrChainNotFound)

	rr := s.serve("/chains/123")

	s.Equal(http.StatusNotFound, rr.Code)
	s.JSONEq(`{"error":"chain not found"}`, rr.Body.String())
}

func (s *HandlerTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}
