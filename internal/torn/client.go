// Package torn is a small client for the Torn faction API.
package torn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
)

const DefaultBaseURL = "https://api.torn.com"

// APIError is an error payload returned by the API with a 200 status
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("torn api error %d: %s", e.Code, e.Message)
}

// Config holds configuration for the Torn client
type Config struct {
	// APIKey is a key with faction API access
	APIKey string

	// FactionID selects the faction; empty means the key owner's faction
	FactionID string

	// BaseURL defaults to DefaultBaseURL
	BaseURL string

	// HTTPClient defaults to a client with a 10 second timeout
	HTTPClient *http.Client
}

// Client reads chain activity and ranked wars for one faction
type Client struct {
	apiKey    string
	factionID string
	baseURL   string
	http      *http.Client
}

// New creates a new Torn client
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("api key cannot be empty")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		apiKey:    cfg.APIKey,
		factionID: cfg.FactionID,
		baseURL:   baseURL,
		http:      httpClient,
	}, nil
}

type chainPayload struct {
	Current int   `json:"current"`
	Timeout int64 `json:"timeout"`
	Start   int64 `json:"start"`
}

type attackPayload struct {
	Code            string `json:"code"`
	TimestampEnded  int64  `json:"timestamp_ended"`
	AttackerID      flexID `json:"attacker_id"`
	AttackerName    string `json:"attacker_name"`
	AttackerFaction flexID `json:"attacker_faction"`
	Result          string `json:"result"`
}

// flexID accepts ids sent as numbers or strings; stealthed attackers come back as ""
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type activityResponse struct {
	Error   *APIError                `json:"error"`
	Chain   *chainPayload            `json:"chain"`
	Attacks map[string]attackPayload `json:"attacks"`
}

// Activity returns the faction's chain state and the attacks since the given time
func (c *Client) Activity(ctx context.Context, since time.Time) (*models.Activity, error) {
	query := url.Values{}
	query.Set("selections", "chain,attacks")
	if !since.IsZero() {
		query.Set("from", strconv.FormatInt(since.Unix(), 10))
	}

	var resp activityResponse
	if err := c.get(ctx, query, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	if resp.Chain == nil {
		return nil, errors.New("response has no chain data")
	}

	activity := &models.Activity{
		Current: resp.Chain.Current,
		Timeout: time.Duration(resp.Chain.Timeout) * time.Second,
		Entries: make([]models.AttackEntry, 0, len(resp.Attacks)),
	}
	if resp.Chain.Start > 0 {
		activity.ChainID = strconv.FormatInt(resp.Chain.Start, 10)
	}

	for id, a := range resp.Attacks {
		// incoming attacks are listed too
		if c.factionID != "" && string(a.AttackerFaction) != c.factionID {
			continue
		}
		name := a.AttackerName
		if name == "" {
			name = "Someone"
		}
		activity.Entries = append(activity.Entries, models.AttackEntry{
			ID:        id,
			ActorID:   string(a.AttackerID),
			ActorName: name,
			Outcome:   a.Result,
			Timestamp: time.Unix(a.TimestampEnded, 0).UTC(),
		})
	}
	sort.SliceStable(activity.Entries, func(i, j int) bool {
		if activity.Entries[i].Timestamp.Equal(activity.Entries[j].Timestamp) {
			return activity.Entries[i].ID < activity.Entries[j].ID
		}
		return activity.Entries[i].Timestamp.Before(activity.Entries[j].Timestamp)
	})

	return activity, nil
}

type rankedWarPayload struct {
	Factions map[string]struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	} `json:"factions"`
	War struct {
		Start int64 `json:"start"`
		End   int64 `json:"end"`
	} `json:"war"`
}

type warsResponse struct {
	Error      *APIError                   `json:"error"`
	RankedWars map[string]rankedWarPayload `json:"rankedwars"`
}

// Wars returns the faction's ranked wars ordered by start time
func (c *Client) Wars(ctx context.Context) ([]*models.War, error) {
	query := url.Values{}
	query.Set("selections", "rankedwars")

	var resp warsResponse
	if err := c.get(ctx, query, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}

	wars := make([]*models.War, 0, len(resp.RankedWars))
	for id, rw := range resp.RankedWars {
		war := &models.War{
			ID:    id,
			Start: time.Unix(rw.War.Start, 0).UTC(),
		}
		if rw.War.End > 0 {
			war.End = time.Unix(rw.War.End, 0).UTC()
		}
		for fid, f := range rw.Factions {
			war.Factions = append(war.Factions, models.Faction{ID: fid, Name: f.Name, Score: f.Score})
		}
		sort.Slice(war.Factions, func(i, j int) bool { return war.Factions[i].ID < war.Factions[j].ID })
		wars = append(wars, war)
	}
	sort.Slice(wars, func(i, j int) bool {
		if wars[i].Start.Equal(wars[j].Start) {
			return wars[i].ID < wars[j].ID
		}
		return wars[i].Start.Before(wars[j].Start)
	})

	return wars, nil
}

func (c *Client) get(ctx context.Context, query url.Values, out any) error {
	query.Set("key", c.apiKey)
	endpoint := fmt.Sprintf("%s/faction/%s?%s", c.baseURL, c.factionID, query.Encode())

	body, err := c.getBytes(ctx, endpoint)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) getBytes(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		// the URL carries the API key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, fmt.Errorf("request failed: %w", urlErr.Err)
		}
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
