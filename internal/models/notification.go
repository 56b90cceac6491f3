package models

// NotificationPurpose names a kind of announcement
type NotificationPurpose string

const (
	// NotificationPurposeChain announces an ongoing external chain
	NotificationPurposeChain NotificationPurpose = "chain"

	// NotificationPurposeWar announces an upcoming ranked war
	NotificationPurposeWar NotificationPurpose = "war"
)

// NotificationConfig maps announcement purposes to Discord channels.
// An empty channel ID means the announcement is disabled.
type NotificationConfig struct {
	ChainChannelID string
	WarChannelID   string
}

// Destination returns the configured channel for a purpose
func (c *NotificationConfig) Destination(purpose NotificationPurpose) (string, bool) {
	if c == nil {
		return "", false
	}
	var id string
	switch purpose {
	case NotificationPurposeChain:
		id = c.ChainChannelID
	case NotificationPurposeWar:
		id = c.WarChannelID
	}
	return id, id != ""
}

// WithDestination returns a copy with the purpose's channel replaced
func (c NotificationConfig) WithDestination(purpose NotificationPurpose, channelID string) NotificationConfig {
	switch purpose {
	case NotificationPurposeChain:
		c.ChainChannelID = channelID
	case NotificationPurposeWar:
		c.WarChannelID = channelID
	}
	return c
}
