package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(env.Options{Environment: map[string]string{
		"DISCORD_TOKEN": "token",
	}})
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.DiscordToken)
	assert.Equal(t, StoreBackendFile, cfg.StoreBackend)
	assert.Equal(t, "chains.json", cfg.ChainsPath)
	assert.Equal(t, "notify_config.json", cfg.NotifyConfigPath)
	assert.Equal(t, "https://api.torn.com", cfg.TornBaseURL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.CountdownInterval)
	assert.Equal(t, 15*time.Second, cfg.WarCountdownInterval)
	assert.Equal(t, 30*time.Second, cfg.TrackInterval)
	assert.Equal(t, 300*time.Second, cfg.InactivityCeiling)
	assert.Equal(t, 5, cfg.MaxPollFailures)
	assert.Equal(t, 60*time.Second, cfg.SuperviseInterval)
	assert.Equal(t, 10, cfg.LeaderboardSize)
	assert.False(t, cfg.TornEnabled())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(env.Options{Environment: map[string]string{
		"DISCORD_TOKEN":      "token",
		"STORE_BACKEND":      "redis",
		"REDIS_DB":           "2",
		"LOG_LEVEL":          "debug",
		"TORN_API_KEY":       "key",
		"TORN_FACTION_ID":    "12345",
		"COUNTDOWN_INTERVAL": "10s",
	}})
	require.NoError(t, err)

	assert.Equal(t, StoreBackendRedis, cfg.StoreBackend)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.CountdownInterval)
	assert.True(t, cfg.TornEnabled())
}

func TestLoadRequiresToken(t *testing.T) {
	_, err := load(env.Options{Environment: map[string]string{}})

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DiscordToken:         "token",
			StoreBackend:         StoreBackendFile,
			CountdownInterval:    5 * time.Second,
			WarCountdownInterval: 15 * time.Second,
			TrackInterval:        30 * time.Second,
			InactivityCeiling:    300 * time.Second,
			MaxPollFailures:      5,
			SuperviseInterval:    time.Minute,
			WarPollInterval:      time.Minute,
			ChainPollInterval:    time.Minute,
			LeaderboardSize:      10,
		}
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"unknown backend", func(c *Config) { c.StoreBackend = "postgres" }, "STORE_BACKEND"},
		{"countdown too slow", func(c *Config) { c.CountdownInterval = 31 * time.Second }, "COUNTDOWN_INTERVAL"},
		{"war countdown zero", func(c *Config) { c.WarCountdownInterval = 0 }, "WAR_COUNTDOWN_INTERVAL"},
		{"track zero", func(c *Config) { c.TrackInterval = 0 }, "TRACK_INTERVAL"},
		{"negative failures", func(c *Config) { c.MaxPollFailures = -1 }, "MAX_POLL_FAILURES"},
		{"zero failures", func(c *Config) { c.MaxPollFailures = 0 }, "MAX_POLL_FAILURES"},
		{"empty leaderboard", func(c *Config) { c.LeaderboardSize = 0 }, "LEADERBOARD_SIZE"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
