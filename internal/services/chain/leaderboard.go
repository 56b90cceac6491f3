package chain

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/chainbot/internal/models"
)

// outcomeCategory buckets an attack result for the leaderboard
type outcomeCategory int

const (
	categoryOther outcomeCategory = iota
	categoryMug
	categoryLeave
)

func categorize(outcome string) outcomeCategory {
	o := strings.ToLower(outcome)
	switch {
	case strings.Contains(o, "mug"):
		return categoryMug
	case strings.Contains(o, "left"), strings.Contains(o, "leave"):
		return categoryLeave
	default:
		return categoryOther
	}
}

// leaderboardBuilder accumulates attack log entries across polls.
// Entries already seen (by ID) are ignored.
type leaderboardBuilder struct {
	seen    map[string]struct{}
	order   []string
	entries map[string]*models.LeaderboardEntry
}

func newLeaderboardBuilder() *leaderboardBuilder {
	return &leaderboardBuilder{
		seen:    make(map[string]struct{}),
		entries: make(map[string]*models.LeaderboardEntry),
	}
}

func (b *leaderboardBuilder) Add(entries []models.AttackEntry) {
	for _, e := range entries {
		if e.ID != "" {
			if _, ok := b.seen[e.ID]; ok {
				continue
			}
			b.seen[e.ID] = struct{}{}
		}

		key := e.ActorID
		if key == "" {
			key = e.ActorName
		}
		entry, ok := b.entries[key]
		if !ok {
			entry = &models.LeaderboardEntry{ActorID: e.ActorID, ActorName: e.ActorName}
			b.entries[key] = entry
			b.order = append(b.order, key)
		}
		if e.ActorName != "" {
			entry.ActorName = e.ActorName
		}

		switch categorize(e.Outcome) {
		case categoryMug:
			entry.Mugs++
		case categoryLeave:
			entry.Leaves++
		default:
			entry.Others++
		}
	}
}

// Build ranks actors by total, highest first; ties keep first-seen order
func (b *leaderboardBuilder) Build(size int) *models.Leaderboard {
	ranked := make([]*models.LeaderboardEntry, 0, len(b.order))
	for _, key := range b.order {
		copied := *b.entries[key]
		ranked = append(ranked, &copied)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total() > ranked[j].Total()
	})

	board := &models.Leaderboard{Entries: ranked}
	if size > 0 && len(ranked) > size {
		board.Entries = ranked[:size]
		board.Omitted = len(ranked) - size
	}
	return board
}

// BuildLeaderboard groups entries by actor and ranks them
func BuildLeaderboard(entries []models.AttackEntry, size int) *models.Leaderboard {
	b := newLeaderboardBuilder()
	b.Add(entries)
	return b.Build(size)
}
