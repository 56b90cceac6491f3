package watch

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/chainbot/internal/common/clock/mocks"
	"github.com/KirkDiggler/chainbot/internal/models"
	"github.com/KirkDiggler/chainbot/internal/repositories/announcement"
	notifyMocks "github.com/KirkDiggler/chainbot/internal/repositories/notify/mocks"
	"github.com/KirkDiggler/chainbot/internal/services/watch/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChainWatcherTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockSource    *mocks.MockChainSource
	mockAnnouncer *mocks.MockAnnouncer
	mockNotify    *notifyMocks.MockRepository
	mockClock     *clockMocks.MockClock
	memory        announcement.Memory
	watcher       *ChainWatcher
	ctx           context.Context

	// Test data
	testChannelID string
}

func (s *ChainWatcherTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSource = mocks.NewMockChainSource(s.mockCtrl)
	s.mockAnnouncer = mocks.NewMockAnnouncer(s.mockCtrl)
	s.mockNotify = notifyMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.memory = announcement.NewInMemory()
	s.ctx = context.Background()
	s.testChannelID = "666666666666666666"

	s.mockClock.EXPECT().Now().Return(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)).AnyTimes()
	s.mockNotify.EXPECT().Get(gomock.Any()).
		Return(&models.NotificationConfig{ChainChannelID: s.testChannelID}, nil).AnyTimes()

	watcher, err := NewChainWatcher(&ChainConfig{
		Source:        s.mockSource,
		Announcer:     s.mockAnnouncer,
		Notifications: s.mockNotify,
		Memory:        s.memory,
		Clock:         s.mockClock,
	})
	s.Require().NoError(err)
	s.watcher = watcher
}

func (s *ChainWatcherTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChainWatcherSuite(t *testing.T) {
	suite.Run(t, new(ChainWatcherTestSuite))
}

func (s *ChainWatcherTestSuite) TestOngoingChainAnnouncedOnce() {
	activity := &models.Activity{ChainID: "1745064000", Current: 12, Timeout: 4 * time.Minute}
	s.mockSource.EXPECT().Activity(gomock.Any(), gomock.Any()).Return(activity, nil).Times(3)
	s.mockAnnouncer.EXPECT().AnnounceChain(gomock.Any(), s.testChannelID, activity).Return(nil).Times(1)

	announced := 0
	for i := 0; i < 3; i++ {
		out, err := s.watcher.Cycle(s.ctx)
		s.Require().NoError(err)
		announced += out.Announced
	}

	s.Equal(1, announced)
}

func (s *ChainWatcherTestSuite) TestEndedChainIsForgotten() {
	s.Require().NoError(s.memory.Mark(s.ctx, announcement.ScopeChain, "1745064000"))
	s.mockSource.EXPECT().Activity(gomock.Any(), gomock.Any()).Return(&models.Activity{}, nil)

	out, err := s.watcher.Cycle(s.ctx)

	s.Require().NoError(err)
	s.Equal(0, out.Announced)
	s.Equal(1, out.Pruned)
}

func (s *ChainWatcherTestSuite) TestNewChainSupersedesOld() {
	s.Require().NoError(s.memory.Mark(s.ctx, announcement.ScopeChain, "1745064000"))
	next := &models.Activity{ChainID: "1745150400", Current: 3, Timeout: 5 * time.Minute}
	s.mockSource.EXPECT().Activity(gomock.Any(), gomock.Any()).Return(next, nil)
	s.mockAnnouncer.EXPECT().AnnounceChain(gomock.Any(), s.testChannelID, next).Return(nil)

	out, err := s.watcher.Cycle(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, out.Announced)
	s.Equal(1, out.Pruned)
	ids, err := s.memory.List(s.ctx, announcement.ScopeChain)
	s.Require().NoError(err)
	s.Equal([]string{"1745150400"}, ids)
}
