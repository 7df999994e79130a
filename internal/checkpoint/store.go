// Package checkpoint persists reconciliation progress so interrupted runs can
// resume exactly where they left off.
package checkpoint

import (
	"context"
	"errors"

	"github.com/wanyvic/ordinal-comparator/internal/model"
)

// ErrForeignCheckpoint is returned when a stored checkpoint's identity tuple
// does not match the key it was looked up under. Such a record must never be
// silently reused.
var ErrForeignCheckpoint = errors.New("checkpoint belongs to a different chain/protocol/endpoint tuple")

// ErrNonMonotonic is returned when a save would move a checkpoint backwards.
var ErrNonMonotonic = errors.New("checkpoint height must not decrease")

// Store is the durable record of the highest block height fully reconciled per
// run identity. Save is atomic with respect to process crash: a reader
// observes the previous value or the new value, never a corrupt mixture.
type Store interface {
	// Load returns the checkpoint for a key, or nil when none exists yet.
	Load(ctx context.Context, key model.CheckpointKey) (*model.Checkpoint, error)
	// Save atomically replaces the checkpoint for its key.
	Save(ctx context.Context, cp model.Checkpoint) error
	// Close releases any underlying resources.
	Close()
}
