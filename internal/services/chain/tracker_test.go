package chain

import (
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ongoing(current int) *models.Activity {
	return &models.Activity{ChainID: "1", Current: current, Timeout: time.Minute}
}

func newTestTracker() *tracker {
	return newTracker(30*time.Second, 300*time.Second, 5, 10)
}

func TestTracker_IncreasingCounterNeverEnds(t *testing.T) {
	tr := newTestTracker()
	for i := 1; i <= 50; i++ {
		step := tr.Observe(ongoing(i), nil)
		require.Nil(t, step.Result, "poll %d", i)
		assert.Zero(t, step.Status.Inactive)
	}
}

func TestTracker_UnchangedCounterEndsOnce(t *testing.T) {
	tr := newTestTracker()

	step := tr.Observe(ongoing(7), nil)
	require.Nil(t, step.Result)

	ends := 0
	polls := 0
	for ends == 0 && polls < 100 {
		polls++
		if tr.Observe(ongoing(7), nil).Result != nil {
			ends++
		}
	}

	assert.Equal(t, 1, ends)
	// 10 stalled polls of 30s reach the 300s ceiling
	assert.Equal(t, 10, polls)
}

func TestTracker_DecreaseAccruesInactivity(t *testing.T) {
	tr := newTestTracker()
	tr.Observe(ongoing(10), nil)

	step := tr.Observe(ongoing(3), nil)
	assert.Equal(t, 30*time.Second, step.Status.Inactive)

	step = tr.Observe(ongoing(4), nil)
	assert.Zero(t, step.Status.Inactive)
}

func TestTracker_ChainOver(t *testing.T) {
	tr := newTestTracker()
	require.Nil(t, tr.Observe(ongoing(5), nil).Result)

	step := tr.Observe(&models.Activity{}, nil)
	require.NotNil(t, step.Result)
	assert.Equal(t, EndReasonChainOver, step.Result.Reason)
}

func TestTracker_NotStartedYetIsInactivity(t *testing.T) {
	tr := newTracker(30*time.Second, 60*time.Second, 5, 10)

	require.Nil(t, tr.Observe(&models.Activity{}, nil).Result)
	step := tr.Observe(&models.Activity{}, nil)
	require.NotNil(t, step.Result)
	assert.Equal(t, EndReasonInactivity, step.Result.Reason)
}

func TestTracker_FailureBudget(t *testing.T) {
	tr := newTestTracker()
	boom := errors.New("status 502")

	for i := 1; i <= 5; i++ {
		require.Nil(t, tr.Observe(nil, boom).Result, "failure %d", i)
	}
	step := tr.Observe(nil, boom)
	require.NotNil(t, step.Result)
	assert.Equal(t, EndReasonErrors, step.Result.Reason)
}

func TestTracker_SuccessResetsFailures(t *testing.T) {
	tr := newTestTracker()
	boom := errors.New("timeout")

	for i := 0; i < 5; i++ {
		tr.Observe(nil, boom)
	}
	tr.Observe(ongoing(1), nil)
	for i := 0; i < 5; i++ {
		require.Nil(t, tr.Observe(nil, boom).Result)
	}
}

func TestTracker_AccumulatesLeaderboard(t *testing.T) {
	tr := newTestTracker()

	a := ongoing(1)
	a.Entries = []models.AttackEntry{attack("1", "a", "A", "Mugged")}
	tr.Observe(a, nil)

	b := ongoing(2)
	b.Entries = []models.AttackEntry{attack("1", "a", "A", "Mugged"), attack("2", "b", "B", "Hospitalized")}
	step := tr.Observe(b, nil)

	require.Len(t, step.Status.Leaderboard.Entries, 2)
	assert.Equal(t, 2, step.Status.Current)
}
