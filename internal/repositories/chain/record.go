package chain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
)

// record is the persisted form of one chain, keyed by channel ID in the snapshot
type record struct {
	MessageID   snowflake `json:"message_id"`
	EndTimeUTC  string    `json:"end_time_utc"`
	Timestamp   int64     `json:"timestamp"`
	Organizer   string    `json:"organizer"`
	OrganizerID snowflake `json:"organizer_id,omitempty"`
	GuildID     snowflake `json:"guild_id,omitempty"`
	Status      string    `json:"status,omitempty"`
	Kind        string    `json:"kind,omitempty"`
	CreatedAt   string    `json:"created_at,omitempty"`
	Joiners     []member  `json:"joiners"`
	CantMakeIt  []member  `json:"cant_make_it"`
}

// legacy end_time_utc values carry no offset
const naiveTimeLayout = "2006-01-02T15:04:05.999999"

func toRecord(c *models.Chain) *record {
	rec := &record{
		MessageID:   snowflake(c.MessageID),
		EndTimeUTC:  c.EndTime.UTC().Format(time.RFC3339),
		Timestamp:   c.EndTime.Unix(),
		Organizer:   c.Organizer.Name,
		OrganizerID: snowflake(c.Organizer.ID),
		GuildID:     snowflake(c.GuildID),
		Status:      string(c.Status),
		Kind:        string(c.Kind),
		Joiners:     []member{},
		CantMakeIt:  []member{},
	}
	if !c.CreatedAt.IsZero() {
		rec.CreatedAt = c.CreatedAt.UTC().Format(time.RFC3339)
	}
	for _, u := range c.Participants.Joined() {
		rec.Joiners = append(rec.Joiners, member(u))
	}
	for _, u := range c.Participants.Declined() {
		rec.CantMakeIt = append(rec.CantMakeIt, member(u))
	}
	return rec
}

func fromRecord(channelID string, rec *record) (*models.Chain, error) {
	if channelID == "" {
		return nil, errors.New("empty channel id")
	}

	endTime, err := parseTime(rec.EndTimeUTC)
	if err != nil {
		if rec.Timestamp == 0 {
			return nil, fmt.Errorf("invalid end time: %w", err)
		}
		endTime = time.Unix(rec.Timestamp, 0).UTC()
	}

	status := models.ChainStatus(rec.Status)
	if rec.Status == "" {
		status = models.ChainStatusCountdown
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown status %q", rec.Status)
	}

	kind := models.ChainKind(rec.Kind)
	if kind != models.ChainKindWar {
		kind = models.ChainKindPlain
	}

	joined := make([]models.User, 0, len(rec.Joiners))
	for _, m := range rec.Joiners {
		joined = append(joined, models.User(m))
	}
	declined := make([]models.User, 0, len(rec.CantMakeIt))
	for _, m := range rec.CantMakeIt {
		declined = append(declined, models.User(m))
	}

	c := &models.Chain{
		ChannelID:    channelID,
		GuildID:      string(rec.GuildID),
		MessageID:    string(rec.MessageID),
		EndTime:      endTime,
		Organizer:    models.User{ID: string(rec.OrganizerID), Name: rec.Organizer},
		Status:       status,
		Kind:         kind,
		Participants: models.NewParticipants(joined, declined),
	}
	if createdAt, err := parseTime(rec.CreatedAt); err == nil {
		c.CreatedAt = createdAt
	}
	return c, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	return time.ParseInLocation(naiveTimeLayout, s, time.UTC)
}

// encodeSnapshot renders the non-terminal chains as a channel ID keyed object
func encodeSnapshot(chains []*models.Chain) ([]byte, error) {
	snapshot := make(map[string]*record, len(chains))
	for _, c := range chains {
		if c == nil || c.Status.IsTerminal() {
			continue
		}
		snapshot[c.ChannelID] = toRecord(c)
	}
	return json.MarshalIndent(snapshot, "", "  ")
}

func encodeRecord(c *models.Chain) ([]byte, error) {
	return json.Marshal(toRecord(c))
}

// decodeEntry validates one stored chain and reports whether it is still live at now
func decodeEntry(channelID string, raw []byte, now time.Time) (*models.Chain, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	c, err := fromRecord(channelID, &rec)
	if err != nil {
		return nil, err
	}
	if c.Status.IsTerminal() || !c.EndTime.After(now) {
		return nil, nil
	}
	return c, nil
}

func sortChains(chains []*models.Chain) {
	sort.Slice(chains, func(i, j int) bool {
		return chains[i].ChannelID < chains[j].ChannelID
	})
}

// snowflake is a Discord ID written as a JSON number when it is numeric
type snowflake string

func (s snowflake) MarshalJSON() ([]byte, error) {
	if isDigits(string(s)) {
		return []byte(s), nil
	}
	return json.Marshal(string(s))
}

func (s *snowflake) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*s = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = snowflake(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = snowflake(n.String())
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// member is a participant stored as an [id, name] pair
type member models.User

func (m member) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{snowflake(m.ID), m.Name})
}

func (m *member) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("participant must be [id, name], got %d elements", len(raw))
	}
	var id snowflake
	if err := json.Unmarshal(raw[0], &id); err != nil {
		return fmt.Errorf("participant id: %w", err)
	}
	var name string
	if err := json.Unmarshal(raw[1], &name); err != nil {
		return fmt.Errorf("participant name: %w", err)
	}
	m.ID = string(id)
	m.Name = name
	return nil
}
