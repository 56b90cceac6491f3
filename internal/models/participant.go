package models

// Participants tracks who joined a chain and who can't make it.
// A user ID is never present in both lists.
type Participants struct {
	joined   []User
	declined []User
}

// NewParticipants restores a participant set; a user listed in both inputs ends up declined
func NewParticipants(joined, declined []User) *Participants {
	p := &Participants{}
	for _, u := range joined {
		p.Join(u)
	}
	for _, u := range declined {
		p.Decline(u)
	}
	return p
}

// Join adds the user to the joined list and removes them from declined.
// It reports whether anything changed.
func (p *Participants) Join(u User) bool {
	removed := false
	p.declined, removed = remove(p.declined, u.ID)
	var added bool
	p.joined, added = upsert(p.joined, u)
	return removed || added
}

// Decline adds the user to the declined list and removes them from joined.
// It reports whether anything changed.
func (p *Participants) Decline(u User) bool {
	removed := false
	p.joined, removed = remove(p.joined, u.ID)
	var added bool
	p.declined, added = upsert(p.declined, u)
	return removed || added
}

// Joined returns a copy of the joined members in response order
func (p *Participants) Joined() []User {
	if p == nil {
		return []User{}
	}
	return append([]User{}, p.joined...)
}

// Declined returns a copy of the declined members in response order
func (p *Participants) Declined() []User {
	if p == nil {
		return []User{}
	}
	return append([]User{}, p.declined...)
}

// HasJoined reports whether the user is in the joined list
func (p *Participants) HasJoined(userID string) bool {
	return p != nil && indexOf(p.joined, userID) >= 0
}

// HasDeclined reports whether the user is in the declined list
func (p *Participants) HasDeclined(userID string) bool {
	return p != nil && indexOf(p.declined, userID) >= 0
}

// Clone returns a deep copy
func (p *Participants) Clone() *Participants {
	if p == nil {
		return &Participants{}
	}
	return &Participants{
		joined:   p.Joined(),
		declined: p.Declined(),
	}
}

func indexOf(users []User, id string) int {
	for i, u := range users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func remove(users []User, id string) ([]User, bool) {
	i := indexOf(users, id)
	if i < 0 {
		return users, false
	}
	return append(users[:i], users[i+1:]...), true
}

// upsert appends u, or refreshes the display name when already present
func upsert(users []User, u User) ([]User, bool) {
	i := indexOf(users, u.ID)
	if i < 0 {
		return append(users, u), true
	}
	if u.Name != "" && users[i].Name != u.Name {
		users[i].Name = u.Name
		return users, true
	}
	return users, false
}
