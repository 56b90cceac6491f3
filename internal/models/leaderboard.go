package models

// LeaderboardEntry holds one member's categorized attack outcomes during a chain
type LeaderboardEntry struct {
	// ActorID is the game ID of the attacker
	ActorID string

	// ActorName is the in-game name of the attacker
	ActorName string

	// Mugs counts outcomes containing "mug"
	Mugs int

	// Leaves counts outcomes containing "left" or "leave"
	Leaves int

	// Others counts every other outcome
	Others int
}

// Total is the sum of all categories
func (e *LeaderboardEntry) Total() int {
	return e.Mugs + e.Leaves + e.Others
}

// Leaderboard represents the ranked standings of a tracked chain
type Leaderboard struct {
	// Entries are ranked by total, highest first
	Entries []*LeaderboardEntry

	// Omitted is how many ranked actors were cut off by the size limit
	Omitted int
}
