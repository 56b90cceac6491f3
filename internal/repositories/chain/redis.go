package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/chainbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	chainKeyPrefix  = "chain:"
	activeChainsKey = "active_chains"
)

// RedisConfig holds configuration for the Redis chain repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Logger receives warnings about unreadable entries; defaults to slog.Default
	Logger *slog.Logger
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedis creates a new Redis-backed chain repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &redisRepository{
		client: cfg.RedisClient,
		logger: logger.With("component", "chain_redis_store"),
	}, nil
}

func chainKey(channelID string) string {
	return fmt.Sprintf("%s%s", chainKeyPrefix, channelID)
}

// SaveChains replaces the stored chains in a single MULTI/EXEC transaction
func (r *redisRepository) SaveChains(ctx context.Context, input *SaveChainsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	// Find channels that are no longer live so their keys can be dropped
	stored, err := r.client.SMembers(ctx, activeChainsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to list stored chains: %w", err)
	}

	live := make(map[string][]byte, len(input.Chains))
	for _, c := range input.Chains {
		if c == nil || c.Status.IsTerminal() {
			continue
		}
		data, err := encodeRecord(c)
		if err != nil {
			return fmt.Errorf("failed to marshal chain %s: %w", c.ChannelID, err)
		}
		live[c.ChannelID] = data
	}

	pipe := r.client.TxPipeline()

	for _, channelID := range stored {
		if _, ok := live[channelID]; !ok {
			pipe.Del(ctx, chainKey(channelID))
		}
	}

	pipe.Del(ctx, activeChainsKey)
	for channelID, data := range live {
		pipe.Set(ctx, chainKey(channelID), data, 0)
		pipe.SAdd(ctx, activeChainsKey, channelID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save chains: %w", err)
	}

	return nil
}

// LoadChains reads every chain in the active set
func (r *redisRepository) LoadChains(ctx context.Context, input *LoadChainsInput) (*LoadChainsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	channelIDs, err := r.client.SMembers(ctx, activeChainsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list stored chains: %w", err)
	}

	output := &LoadChainsOutput{Chains: make([]*models.Chain, 0, len(channelIDs))}
	if len(channelIDs) == 0 {
		return output, nil
	}

	keys := make([]string, len(channelIDs))
	for i, channelID := range channelIDs {
		keys[i] = chainKey(channelID)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get chains: %w", err)
	}

	for i, value := range values {
		channelID := channelIDs[i]
		data, ok := value.(string)
		if !ok {
			r.logger.Warn("chain listed as active but missing", "channel_id", channelID)
			output.Dropped++
			continue
		}

		c, err := decodeEntry(channelID, []byte(data), input.Now)
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
