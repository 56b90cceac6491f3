package chain

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/chainbot/internal/models"
)

// task is the single goroutine driving one channel's chain
type task struct {
	id     string
	cancel context.CancelCauseFunc
	done   chan struct{}

	// status is the chain's final status, set before done is closed
	status models.ChainStatus
}

// Registry holds the live chains and their tasks, keyed by channel ID.
// Chains handed out are clones; mutations go through Update.
type Registry struct {
	mu       sync.Mutex
	chains   map[string]*models.Chain
	reserved map[string]struct{}
	tasks    map[string]*task
	tracking map[string]*TrackingStatus
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		chains:   make(map[string]*models.Chain),
		reserved: make(map[string]struct{}),
		tasks:    make(map[string]*task),
		tracking: make(map[string]*TrackingStatus),
	}
}

// Reserve claims a free channel while its first message is being sent
func (r *Registry) Reserve(channelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.occupied(channelID) {
		return ErrChainExists
	}
	r.reserved[channelID] = struct{}{}
	return nil
}

// Release drops a reservation that was never committed
func (r *Registry) Release(channelID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.reserved, channelID)
}

// Create stores a chain, consuming any reservation for its channel
func (r *Registry) Create(c *models.Chain) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.chains[c.ChannelID]; ok && !existing.Status.IsTerminal() {
		return ErrChainExists
	}
	delete(r.reserved, c.ChannelID)
	r.chains[c.ChannelID] = c.Clone()
	return nil
}

// Get returns a copy of the channel's chain
func (r *Registry) Get(channelID string) (*models.Chain, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.chains[channelID]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// Update applies fn to the stored chain atomically and returns a copy of the result
func (r *Registry) Update(channelID string, fn func(c *models.Chain) (bool, error)) (*models.Chain, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.chains[channelID]
	if !ok {
		return nil, false, ErrChainNotFound
	}
	changed, err := fn(c)
	if err != nil {
		return c.Clone(), false, err
	}
	return c.Clone(), changed, nil
}

// Remove deletes the channel's chain
func (r *Registry) Remove(channelID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.chains, channelID)
	delete(r.tracking, channelID)
}

// ListNonTerminal returns copies of every live chain ordered by channel ID
func (r *Registry) ListNonTerminal() []*models.Chain {
	r.mu.Lock()
	defer r.mu.Unlock()

	chains := make([]*models.Chain, 0, len(r.chains))
	for _, c := range r.chains {
		if c.Status.IsTerminal() {
			continue
		}
		chains = append(chains, c.Clone())
	}
	sort.Slice(chains, func(i, j int) bool {
		return chains[i].ChannelID < chains[j].ChannelID
	})
	return chains
}

// Tracking returns the latest tracking progress of a channel
func (r *Registry) Tracking(channelID string) *TrackingStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	status, ok := r.tracking[channelID]
	if !ok {
		return nil
	}
	copied := *status
	return &copied
}

func (r *Registry) setTracking(channelID string, status *TrackingStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.chains[channelID]; ok {
		r.tracking[channelID] = status
	}
}

func (r *Registry) occupied(channelID string) bool {
	if _, ok := r.reserved[channelID]; ok {
		return true
	}
	c, ok := r.chains[channelID]
	return ok && !c.Status.IsTerminal()
}

// attach registers t as the channel's task unless a live task already exists
func (r *Registry) attach(channelID string, t *task) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.chains[channelID]
	if !ok || c.Status.IsTerminal() {
		return false
	}
	if existing, ok := r.tasks[channelID]; ok && !isDone(existing) {
		return false
	}
	r.tasks[channelID] = t
	return true
}

func (r *Registry) task(channelID string) *task {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[channelID]
	if !ok || isDone(t) {
		return nil
	}
	return t
}

// hasLiveTask reports whether a task is currently driving the channel
func (r *Registry) hasLiveTask(channelID string) bool {
	return r.task(channelID) != nil
}

// finish moves the chain to status and removes it, but only when t still owns the channel.
// It returns the final copy of the chain.
func (r *Registry) finish(channelID string, t *task, status models.ChainStatus) (*models.Chain, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tasks[channelID] != t {
		return nil, false
	}
	delete(r.tasks, channelID)
	delete(r.tracking, channelID)

	c, ok := r.chains[channelID]
	if !ok {
		return nil, false
	}
	c.Status = status
	delete(r.chains, channelID)
	return c.Clone(), true
}

// detach unregisters t without touching the chain
func (r *Registry) detach(channelID string, t *task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tasks[channelID] == t {
		delete(r.tasks, channelID)
	}
}

// removeUnowned removes a chain that has no live task, moving it to status
func (r *Registry) removeUnowned(channelID string, status models.ChainStatus) (*models.Chain, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.tasks[channelID]; ok && !isDone(t) {
		return nil, false
	}
	c, ok := r.chains[channelID]
	if !ok {
		return nil, false
	}
	c.Status = status
	delete(r.chains, channelID)
	delete(r.tracking, channelID)
	return c.Clone(), true
}

func isDone(t *task) bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}
