// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store backends
const (
	StoreBackendFile  = "file"
	StoreBackendRedis = "redis"
)

// maxCountdownInterval keeps countdown messages reasonably fresh
const maxCountdownInterval = 30 * time.Second

// Config is the bot's runtime configuration
type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,required"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`
	AdminRoleID   string `env:"ADMIN_ROLE"`

	// Torn API access; tracking and watchers are disabled without a key.
	// An empty faction ID means the key owner's faction.
	TornAPIKey    string `env:"TORN_API_KEY"`
	TornFactionID string `env:"TORN_FACTION_ID"`
	TornBaseURL   string `env:"TORN_BASE_URL" envDefault:"https://api.torn.com"`

	StoreBackend     string `env:"STORE_BACKEND"      envDefault:"file"`
	ChainsPath       string `env:"CHAINS_PATH"        envDefault:"chains.json"`
	NotifyConfigPath string `env:"NOTIFY_CONFIG_PATH" envDefault:"notify_config.json"`
	RedisAddr        string `env:"REDIS_ADDR"         envDefault:"localhost:6379"`
	RedisPassword    string `env:"REDIS_PASSWORD"`
	RedisDB          int    `env:"REDIS_DB"           envDefault:"0"`

	// AnnouncementsDBPath is the SQLite file; empty keeps announcements in memory
	AnnouncementsDBPath string `env:"ANNOUNCEMENTS_DB_PATH"`

	// HTTPAddr enables the introspection server when set
	HTTPAddr string     `env:"HTTP_ADDR"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	CountdownInterval    time.Duration `env:"COUNTDOWN_INTERVAL"     envDefault:"5s"`
	WarCountdownInterval time.Duration `env:"WAR_COUNTDOWN_INTERVAL" envDefault:"15s"`
	TrackInterval        time.Duration `env:"TRACK_INTERVAL"         envDefault:"30s"`
	InactivityCeiling    time.Duration `env:"INACTIVITY_CEILING"     envDefault:"300s"`
	MaxPollFailures      int           `env:"MAX_POLL_FAILURES"      envDefault:"5"`
	SuperviseInterval    time.Duration `env:"SUPERVISE_INTERVAL"     envDefault:"60s"`
	WarPollInterval      time.Duration `env:"WAR_POLL_INTERVAL"      envDefault:"60s"`
	ChainPollInterval    time.Duration `env:"CHAIN_POLL_INTERVAL"    envDefault:"60s"`
	LeaderboardSize      int           `env:"LEADERBOARD_SIZE"       envDefault:"10"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	return load(env.Options{})
}

func load(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the bot cannot run with
func (c *Config) Validate() error {
	var errs []error

	switch c.StoreBackend {
	case StoreBackendFile, StoreBackendRedis:
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", StoreBackendFile, StoreBackendRedis, c.StoreBackend))
	}

	for name, d := range map[string]time.Duration{
		"COUNTDOWN_INTERVAL":     c.CountdownInterval,
		"WAR_COUNTDOWN_INTERVAL": c.WarCountdownInterval,
	} {
		if d <= 0 || d > maxCountdownInterval {
			errs = append(errs, fmt.Errorf("%s must be between 0s and %s, got %s", name, maxCountdownInterval, d))
		}
	}

	for name, d := range map[string]time.Duration{
		"TRACK_INTERVAL":      c.TrackInterval,
		"INACTIVITY_CEILING":  c.InactivityCeiling,
		"SUPERVISE_INTERVAL":  c.SuperviseInterval,
		"WAR_POLL_INTERVAL":   c.WarPollInterval,
		"CHAIN_POLL_INTERVAL": c.ChainPollInterval,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}

	if c.MaxPollFailures <= 0 {
		errs = append(errs, fmt.Errorf("MAX_POLL_FAILURES must be positive, got %d", c.MaxPollFailures))
	}
	if c.LeaderboardSize <= 0 {
		errs = append(errs, fmt.Errorf("LEADERBOARD_SIZE must be positive, got %d", c.LeaderboardSize))
	}

	return errors.Join(errs...)
}

// TornEnabled reports whether the game API is configured
func (c *Config) TornEnabled() bool {
	return c.TornAPIKey != ""
}
