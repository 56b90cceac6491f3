package chain

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistryChain(channelID string) *models.Chain {
	return &models.Chain{
		ChannelID:    channelID,
		EndTime:      time.Date(2025, 4, 19, 13, 0, 0, 0, time.UTC),
		Status:       models.ChainStatusCountdown,
		Participants: models.NewParticipants(nil, nil),
	}
}

func newTestTask(id string) *task {
	_, cancel := context.WithCancelCause(context.Background())
	return &task{id: id, cancel: cancel, done: make(chan struct{})}
}

func TestRegistry_ReserveBlocksChannel(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Reserve("100"))
	assert.ErrorIs(t, r.Reserve("100"), ErrChainExists)

	// a reservation is not a live chain
	assert.Empty(t, r.ListNonTerminal())

	r.Release("100")
	assert.NoError(t, r.Reserve("100"))
}

func TestRegistry_CreateRejectsLiveChain(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Create(newRegistryChain("100")))
	assert.ErrorIs(t, r.Create(newRegistryChain("100")), ErrChainExists)
	assert.ErrorIs(t, r.Reserve("100"), ErrChainExists)
}

func TestRegistry_GetReturnsCopies(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Create(newRegistryChain("100")))

	c, ok := r.Get("100")
	require.True(t, ok)
	c.Participants.Join(models.User{ID: "1", Name: "A"})
	c.Status = models.ChainStatusEnded

	stored, _ := r.Get("100")
	assert.Empty(t, stored.Participants.Joined())
	assert.Equal(t, models.ChainStatusCountdown, stored.Status)
}

func TestRegistry_Update(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Create(newRegistryChain("100")))

	c, changed, err := r.Update("100", func(c *models.Chain) (bool, error) {
		return c.Participants.Join(models.User{ID: "1", Name: "A"}), nil
	})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, c.Participants.HasJoined("1"))

	_, _, err = r.Update("200", func(c *models.Chain) (bool, error) { return true, nil })
	assert.ErrorIs(t, err, ErrChainNotFound)
}

func TestRegistry_ListNonTerminalSorted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Create(newRegistryChain("300")))
	require.NoError(t, r.Create(newRegistryChain("100")))
	require.NoError(t, r.Create(newRegistryChain("200")))

	chains := r.ListNonTerminal()
	require.Len(t, chains, 3)
	assert.Equal(t, "100", chains[0].ChannelID)
	assert.Equal(t, "300", chains[2].ChannelID)

	r.Remove("200")
	assert.Len(t, r.ListNonTerminal(), 2)
}

func TestRegistry_SingleTaskPerChannel(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Create(newRegistryChain("100")))

	first := newTestTask("first")
	second := newTestTask("second")

	require.True(t, r.attach("100", first))
	assert.False(t, r.attach("100", second))
	assert.True(t, r.hasLiveTask("100"))

	// only the owner may finish the chain
	_, ok := r.finish("100", second, models.ChainStatusEnded)
	assert.False(t, ok)
	_, ok = r.removeUnowned("100", models.ChainStatusCancelled)
	assert.False(t, ok)

	close(first.done)
	assert.False(t, r.hasLiveTask("100"))
	assert.True(t, r.attach("100", second))

	final, ok := r.finish("100", second, models.ChainStatusEnded)
	require.True(t, ok)
	assert.Equal(t, models.ChainStatusEnded, final.Status)
	_, ok = r.Get("100")
	assert.False(t, ok)
}

func TestRegistry_AttachRequiresLiveChain(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.attach("100", newTestTask("t")))
}
