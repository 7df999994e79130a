package model

import (
	"strings"
	"time"
)

// CheckpointKey identifies one reconciliation lineage. A checkpoint written for
// one tuple must never be reused by a run with a different tuple.
type CheckpointKey struct {
	Chain             Chain
	Protocol          Protocol
	PrimaryEndpoint   string
	SecondaryEndpoint string
}

// NewCheckpointKey builds a key with endpoint URLs normalized so that a
// trailing slash does not orphan previously recorded progress.
func NewCheckpointKey(chain Chain, protocol Protocol, primary, secondary string) CheckpointKey {
	return CheckpointKey{
		Chain:             chain,
		Protocol:          protocol,
		PrimaryEndpoint:   NormalizeEndpoint(primary),
		SecondaryEndpoint: NormalizeEndpoint(secondary),
	}
}

// NormalizeEndpoint canonicalizes an endpoint URL for key purposes.
func NormalizeEndpoint(endpoint string) string {
	return strings.TrimRight(strings.TrimSpace(endpoint), "/")
}

// Checkpoint records the highest block height fully reconciled for a key.
// LastReconciledHeight only ever increases.
type Checkpoint struct {
	Key                  CheckpointKey
	LastReconciledHeight uint64
	UpdatedAt            time.Time
}
