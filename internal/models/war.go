package models

import "time"

// Faction is one side of a ranked war
type Faction struct {
	ID    string
	Name  string
	Score int
}

// War represents a scheduled ranked war between factions
type War struct {
	// ID is the ranked war identifier
	ID string

	// Start is when the war begins
	Start time.Time

	// End is when the war finished; zero while it hasn't
	End time.Time

	// Factions are the participating factions
	Factions []Faction
}

// HasStarted reports whether the war started at or before now
func (w *War) HasStarted(now time.Time) bool {
	return !w.Start.After(now)
}

// HasEnded reports whether the war is over at now
func (w *War) HasEnded(now time.Time) bool {
	return !w.End.IsZero() && !w.End.After(now)
}
