// Package save persists the progression state as a single JSON blob under a
// fixed key.
package save

//go:generate mockgen -destination=mock/mock_repository.go -package=savemock github.com/KirkDiggler/doodle-api/internal/repositories/save Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
)

const (
	// DefaultKey is the canonical save key
	DefaultKey = "doodleGachaSave_v1"
	// DefaultLegacyKey is read when the canonical key is missing
	DefaultLegacyKey = "doodleGachaSave"
)

// Repository defines the storage interface for the saved game
type Repository interface {
	// Load reads the saved game, falling back to the legacy key.
	// Returns NotFound when neither key exists.
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Save overwrites the saved game
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Delete removes the saved game under both keys
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// LoadInput defines the request for loading the saved game
type LoadInput struct{}

// LoadOutput defines the response for loading the saved game
type LoadOutput struct {
	State *gacha.ProgressionState
	// Key is the key the snapshot was read from
	Key     string
	Legacy  bool
	Version int
	SavedAt time.Time
}

// SaveInput defines the request for saving the game
type SaveInput struct {
	State *gacha.ProgressionState
}

// SaveOutput defines the response for saving the game
type SaveOutput struct {
	SavedAt time.Time
	Bytes   int
}

// DeleteInput defines the request for deleting the saved game
type DeleteInput struct{}

// DeleteOutput defines the response for deleting the saved game
type DeleteOutput struct {
	// Deleted counts the keys that existed
	Deleted int
}
