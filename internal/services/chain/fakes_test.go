package chain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
	chainRepo "github.com/KirkDiggler/chainbot/internal/repositories/chain"
)

// fakeRenderer records renders so lifecycle tests can wait on them
type fakeRenderer struct {
	mu sync.Mutex

	updateErr     error
	missing       map[string]bool
	sent          int
	updates       int
	announced     []*models.Chain
	tracking      int
	finals        []*TrackingResult
	cancellations []models.User
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{missing: make(map[string]bool)}
}

func (r *fakeRenderer) SendChain(ctx context.Context, chain *models.Chain, remaining time.Duration) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent++
	return "msg-" + chain.ChannelID, nil
}

func (r *fakeRenderer) UpdateChain(ctx context.Context, chain *models.Chain, remaining time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	return r.updateErr
}

func (r *fakeRenderer) AnnounceStart(ctx context.Context, chain *models.Chain) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.announced = append(r.announced, chain)
	return nil
}

func (r *fakeRenderer) UpdateTracking(ctx context.Context, chain *models.Chain, status *TrackingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tracking++
	return nil
}

func (r *fakeRenderer) Final(ctx context.Context, chain *models.Chain, result *TrackingResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finals = append(r.finals, result)
	return nil
}

func (r *fakeRenderer) Cancelled(ctx context.Context, chain *models.Chain, by models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancellations = append(r.cancellations, by)
	return nil
}

func (r *fakeRenderer) ChannelExists(ctx context.Context, channelID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.missing[channelID], nil
}

func (r *fakeRenderer) counts() (announced, finals, cancellations int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.announced), len(r.finals), len(r.cancellations)
}

func (r *fakeRenderer) finalResults() []*TrackingResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*TrackingResult{}, r.finals...)
}

// fakeSource replays scripted polls, repeating the last one
type fakeSource struct {
	mu    sync.Mutex
	polls []func() (*models.Activity, error)
	calls int
}

func (f *fakeSource) Activity(ctx context.Context, since time.Time) (*models.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	if i >= len(f.polls) {
		i = len(f.polls) - 1
	}
	f.calls++
	return f.polls[i]()
}

func (f *fakeSource) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeRepository keeps the latest snapshot in memory
type fakeRepository struct {
	mu     sync.Mutex
	stored []*models.Chain
	saves  int
}

func (f *fakeRepository) SaveChains(ctx context.Context, input *chainRepo.SaveChainsInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	f.stored = nil
	for _, c := range input.Chains {
		f.stored = append(f.stored, c.Clone())
	}
	return nil
}

func (f *fakeRepository) LoadChains(ctx context.Context, input *chainRepo.LoadChainsInput) (*chainRepo.LoadChainsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	output := &chainRepo.LoadChainsOutput{}
	for _, c := range f.stored {
		if c.EndTime.After(input.Now) {
			output.Chains = append(output.Chains, c.Clone())
		} else {
			output.Dropped++
		}
	}
	return output, nil
}

func (f *fakeRepository) snapshot() []*models.Chain {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.Chain{}, f.stored...)
}

// sequenceUUID hands out predictable task IDs
type sequenceUUID struct {
	mu sync.Mutex
	n  int
}

func (u *sequenceUUID) NewUUID() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.n++
	return fmt.Sprintf("task-%d", u.n)
}
