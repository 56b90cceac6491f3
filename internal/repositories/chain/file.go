package chain

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

// FileConfig holds configuration for the JSON file chain repository
type FileConfig struct {
	// Path of the snapshot file
	Path string

	// Logger receives warnings about unreadable snapshots; defaults to slog.Default
	Logger *slog.Logger
}

// fileRepository implements the Repository interface on a single JSON file
type fileRepository struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewFile creates a new file-backed chain repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
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
		logger: logger.With("component", "chain_file_store", "path", cfg.Path),
	}, nil
}

// SaveChains writes the snapshot to a temp file and renames it over the old one,
// so a failed write leaves the previous snapshot intact
func (r *fileRepository) SaveChains(ctx context.Context, input *SaveChainsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	data, err := encodeSnapshot(input.Chains)
	if err != nil {
		return fmt.Errorf("failed to marshal chains: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := atomicfile.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save chains: %w", err)
	}

	return nil
}

// LoadChains reads the snapshot. A missing file yields no chains; a corrupt
// file or entry is logged and skipped.
func (r *fileRepository) LoadChains(ctx context.Context, input *LoadChainsInput) (*LoadChainsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.Lock()
	data, err := os.ReadFile(r.path)
	r.mu.Unlock()

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &LoadChainsOutput{Chains: []*models.Chain{}}, nil
		}
		return nil, fmt.Errorf("failed to read chains file: %w", err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		r.logger.Warn("chains file is corrupt, starting with no chains", "error", err)
		return &LoadChainsOutput{Chains: []*models.Chain{}}, nil
	}

	output := &LoadChainsOutput{Chains: make([]*models.Chain, 0, len(entries))}
	for channelID, raw := range entries {
		c, err := decodeEntry(channelID, raw, input.Now)
		if err != nil {
			r.logger.Warn("skipping unreadable chain", "channel_id", channelID, "error", err)
			output.Dropped++
			continue
		}
		if c == nil {
			output.Dropped++
			continue
		}
		output.Chains = append(output.Chains, c)
	}
	sortChains(output.Chains)

	return output, nil
}
