package storage

import (
	"context"
	"time"
)

// Storage keys, one per state container. Each key maps to a single versioned
// JSON snapshot of that container's full state.
const (
	KeyCatalog   = "catalog"
	KeyWorkouts  = "workouts"
	KeyPlans     = "weekly_plans"
	KeyWater     = "water"
	KeyBootstrap = "bootstrap"
)

// Snapshot is a stored state payload together with its schema version.
type Snapshot struct {
	Version   int       `json:"version"`
	Payload   []byte    `json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists versioned JSON snapshots under string keys. Both the SQLite
// and Postgres backends satisfy it.
type Store interface {
	// Load returns the snapshot for key. The bool is false when the key has
	// never been saved.
	Load(ctx context.Context, key string) (Snapshot, bool, error)
	// Save writes (or overwrites) the snapshot for key.
	Save(ctx context.Context, key string, version int, payload []byte) error
	// Delete removes the snapshot for key. Missing keys are a no-op.
	Delete(ctx context.Context, key string) error
	// Keys lists all stored keys.
	Keys(ctx context.Context) ([]string, error)
	Close() error
}
