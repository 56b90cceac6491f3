package chain

import (
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
)

// tracker decides when an active chain is over from successive polls
type tracker struct {
	interval    time.Duration
	ceiling     time.Duration
	maxFailures int
	size        int

	last     int
	inactive time.Duration
	failures int
	seen     bool
	board    *leaderboardBuilder
}

func newTracker(interval, ceiling time.Duration, maxFailures, size int) *tracker {
	return &tracker{
		interval:    interval,
		ceiling:     ceiling,
		maxFailures: maxFailures,
		size:        size,
		board:       newLeaderboardBuilder(),
	}
}

// trackStep is the outcome of one poll
type trackStep struct {
	Status *TrackingStatus

	// Result is set once tracking is over
	Result *TrackingResult
}

// Observe folds one poll into the tracker. A nil activity or non-nil err
// counts against the failure budget.
func (t *tracker) Observe(activity *models.Activity, err error) *trackStep {
	if err != nil || activity == nil {
		t.failures++
		if t.failures > t.maxFailures {
			return t.finish(EndReasonErrors)
		}
		return &trackStep{Status: t.status()}
	}
	t.failures = 0

	t.board.Add(activity.Entries)

	if t.seen && !activity.Ongoing() {
		t.last = activity.Current
		return t.finish(EndReasonChainOver)
	}

	// a counter reset or decrease is not progress
	if activity.Current > t.last {
		t.inactive = 0
	} else {
		t.inactive += t.interval
	}
	t.last = activity.Current
	if activity.Ongoing() {
		t.seen = true
	}

	if t.inactive >= t.ceiling {
		return t.finish(EndReasonInactivity)
	}
	return &trackStep{Status: t.status()}
}

func (t *tracker) status() *TrackingStatus {
	return &TrackingStatus{
		Current:     t.last,
		Inactive:    t.inactive,
		Leaderboard: t.board.Build(t.size),
	}
}

func (t *tracker) finish(reason EndReason) *trackStep {
	return &trackStep{
		Status: t.status(),
		Result: &TrackingResult{
			Reason:      reason,
			Current:     t.last,
			Leaderboard: t.board.Build(t.size),
		},
	}
}
