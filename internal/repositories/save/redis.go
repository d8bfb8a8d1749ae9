package save

import (
	"context"
	stderrors "errors"

	"github.com/KirkDiggler/doodle-api/internal/errors"
	"github.com/KirkDiggler/doodle-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/doodle-api/internal/redis"
)

// Config holds the configuration shared by the repository implementations
type Config struct {
	Codec *Codec
	Clock clock.Clock
	// Key defaults to DefaultKey
	Key string
	// LegacyKey defaults to DefaultLegacyKey. Set it equal to Key to disable
	// the fallback.
	LegacyKey string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Codec == nil {
		return errors.InvalidArgument("codec is required")
	}
	if err := c.Codec.Validate(); err != nil {
		return err
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

func (c *Config) keys() (string, string) {
	key, legacy := c.Key, c.LegacyKey
	if key == "" {
		key = DefaultKey
	}
	if legacy == "" {
		legacy = DefaultLegacyKey
	}
	return key, legacy
}

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Config
	Client redisclient.Client
}

type redisRepository struct {
	client    redisclient.Client
	codec     *Codec
	clock     clock.Clock
	key       string
	legacyKey string
}

// NewRedis creates a new Redis repository for the saved game
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	key, legacy := cfg.keys()
	return &redisRepository{
		client:    cfg.Client,
		codec:     cfg.Codec,
		clock:     cfg.Clock,
		key:       key,
		legacyKey: legacy,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Load reads the canonical key, then the legacy key
func (r *redisRepository) Load(ctx context.Context, _ *LoadInput) (*LoadOutput, error) {
	for _, key := range r.readOrder() {
		data, err := r.client.Get(ctx, key).Bytes()
		if err != nil {
			if stderrors.Is(err, redisclient.Nil) {
				continue
			}
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get save from Redis")
		}

		state, meta, err := r.codec.Decode(data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode save").WithMeta("key", key)
		}

		return &LoadOutput{
			State:   state,
			Key:     key,
			Legacy:  key != r.key,
			Version: meta.Version,
			SavedAt: meta.SavedAt,
		}, nil
	}

	return nil, errors.NotFound("no saved game")
}

// Save writes the snapshot without expiry
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	now := r.clock.Now()
	data, err := r.codec.Encode(input.State, now)
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store save in Redis")
	}

	return &SaveOutput{SavedAt: now, Bytes: len(data)}, nil
}

// Delete removes the canonical and legacy keys
func (r *redisRepository) Delete(ctx context.Context, _ *DeleteInput) (*DeleteOutput, error) {
	deleted, err := r.client.Del(ctx, r.readOrder()...).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete save from Redis")
	}
	return &DeleteOutput{Deleted: int(deleted)}, nil
}

func (r *redisRepository) readOrder() []string {
	if r.legacyKey == r.key {
		return []string{r.key}
	}
	return []string{r.key, r.legacyKey}
}
