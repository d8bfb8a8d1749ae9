package save

import (
	"context"
	"sync"

	"github.com/KirkDiggler/doodle-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. Snapshots
// go through the same codec as the Redis repository.
type InMemoryRepository struct {
	mu        sync.RWMutex
	store     map[string][]byte
	codec     *Codec
	cfg       *Config
	key       string
	legacyKey string
}

// NewInMemory creates a new in-memory repository
func NewInMemory(cfg *Config) (*InMemoryRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	key, legacy := cfg.keys()
	return &InMemoryRepository{
		store:     make(map[string][]byte),
		codec:     cfg.Codec,
		cfg:       cfg,
		key:       key,
		legacyKey: legacy,
	}, nil
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Load reads the canonical key, then the legacy key
func (r *InMemoryRepository) Load(_ context.Context, _ *LoadInput) (*LoadOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, key := range []string{r.key, r.legacyKey} {
		data, ok := r.store[key]
		if !ok {
			continue
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

// Save stores the encoded snapshot
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	now := r.cfg.Clock.Now()
	data, err := r.codec.Encode(input.State, now)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[r.key] = data

	return &SaveOutput{SavedAt: now, Bytes: len(data)}, nil
}

// Delete removes the canonical and legacy keys
func (r *InMemoryRepository) Delete(_ context.Context, _ *DeleteInput) (*DeleteOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for _, key := range []string{r.key, r.legacyKey} {
		if _, ok := r.store[key]; ok {
			delete(r.store, key)
			deleted++
		}
	}
	return &DeleteOutput{Deleted: deleted}, nil
}

// Put stores raw bytes under key, for seeding saves written elsewhere
func (r *InMemoryRepository) Put(key string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[key] = append([]byte(nil), data...)
}
