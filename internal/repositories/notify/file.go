package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/KirkDiggler/chainbot/internal/common/atomicfile"
	"github.com/KirkDiggler/chainbot/internal/models"
)

// document is the persisted configuration file
type document struct {
	ChainNotificationChannelID *json.Number `json:"chain_notification_channel_id"`
	WarNotificationChannelID   *json.Number `json:"war_notification_channel_id"`
}

// Config holds configuration for the file notification repository
type Config struct {
	// Path of the configuration file
	Path string

	// Logger defaults to slog.Default
	Logger *slog.Logger
}

type fileRepository struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// New creates a file-backed notification repository
func New(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &fileRepository{
		path:   cfg.Path,
		logger: logger.With("component", "notify_store", "path", cfg.Path),
	}, nil
}

func (r *fileRepository) Get(ctx context.Context) (*models.NotificationConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read()
}

func (r *fileRepository) Set(ctx context.Context, input *SetInput) (*models.NotificationConfig, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Purpose != models.NotificationPurposeChain && input.Purpose != models.NotificationPurposeWar {
		return nil, fmt.Errorf("unknown notification purpose %q", input.Purpose)
	}
	if input.ChannelID != "" && !isNumber(input.ChannelID) {
		return nil, fmt.Errorf("channel id %q is not numeric", input.ChannelID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.read()
	if err != nil {
		return nil, err
	}

	updated := current.WithDestination(input.Purpose, input.ChannelID)

	data, err := json.MarshalIndent(&document{
		ChainNotificationChannelID: toNumber(updated.ChainChannelID),
		WarNotificationChannelID:   toNumber(updated.WarChannelID),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification config: %w", err)
	}

	if err := atomicfile.WriteFile(r.path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to save notification config: %w", err)
	}

	return &updated, nil
}

// read must be called with mu held
func (r *fileRepository) read() (*models.NotificationConfig, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &models.NotificationConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read notification config: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		r.logger.Warn("notification config is corrupt, notifications disabled", "error", err)
		return &models.NotificationConfig{}, nil
	}

	return &models.NotificationConfig{
		ChainChannelID: fromNumber(doc.ChainNotificationChannelID),
		WarChannelID:   fromNumber(doc.WarNotificationChannelID),
	}, nil
}

func toNumber(id string) *json.Number {
	if id == "" {
		return nil
	}
	n := json.Number(id)
	return &n
}

func fromNumber(n *json.Number) string {
	if n == nil {
		return ""
	}
	return n.String()
}

func isNumber(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
