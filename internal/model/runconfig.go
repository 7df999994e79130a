package model

import (
	"errors"
	"fmt"
)

// DefaultWorkerCount is the worker pool size used when none is configured.
const DefaultWorkerCount = 100

// RunConfig is the immutable configuration for one reconciliation run.
// StartHeight zero means "first protocol activation height"; EndHeight zero
// means "resolve from the common chain tip of both endpoints".
type RunConfig struct {
	Chain             Chain
	Protocol          Protocol
	PrimaryEndpoint   string
	SecondaryEndpoint string
	StartHeight       uint64
	EndHeight         uint64
	Workers           int
	TolerateGaps      bool
}

// Validate checks the config for structural problems. It does not reach the
// network; endpoint reachability is the engine's concern.
func (c RunConfig) Validate() error {
	if c.PrimaryEndpoint == "" {
		return errors.New("primary endpoint is required")
	}
	if c.SecondaryEndpoint == "" {
		return errors.New("secondary endpoint is required")
	}
	if NormalizeEndpoint(c.PrimaryEndpoint) == NormalizeEndpoint(c.SecondaryEndpoint) {
		return errors.New("primary and secondary endpoints must differ")
	}
	if _, err := ParseChain(string(c.Chain)); err != nil {
		return err
	}
	if _, err := ParseProtocol(string(c.Protocol)); err != nil {
		return err
	}
	if c.EndHeight != 0 && c.StartHeight > c.EndHeight {
		return fmt.Errorf("end height %d is less than start height %d", c.EndHeight, c.StartHeight)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", c.Workers)
	}
	return nil
}

// CheckpointKey returns the checkpoint identity for this run.
func (c RunConfig) CheckpointKey() CheckpointKey {
	return NewCheckpointKey(c.Chain, c.Protocol, c.PrimaryEndpoint, c.SecondaryEndpoint)
}
