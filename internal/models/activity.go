package models

import "time"

// AttackEntry is a single attack log line reported by the game API
type AttackEntry struct {
	// ID is the attack log identifier
	ID string

	// ActorID is the attacker's game ID
	ActorID string

	// ActorName is the attacker's in-game name
	ActorName string

	// Outcome is the raw result text, e.g. "Mugged" or "Hospitalized"
	Outcome string

	// Timestamp is when the attack ended
	Timestamp time.Time
}

// Activity is one poll of the faction's chain state
type Activity struct {
	// ChainID identifies the external chain (its start timestamp); empty when no chain runs
	ChainID string

	// Current is the aggregate chain counter
	Current int

	// Timeout is how long until the external chain breaks without a hit
	Timeout time.Duration

	// Entries are the attack log entries returned with the poll
	Entries []AttackEntry
}

// Ongoing reports whether the game API considers a chain to be running
func (a *Activity) Ongoing() bool {
	return a != nil && a.Current > 0 && a.Timeout > 0
}
