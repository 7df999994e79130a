// Package compare implements the per-protocol receipt comparators.
//
// Comparators are pure: no I/O, no clock, no shared state. Given the same two
// receipt sets they produce the same entries in the same order on every call,
// so report diffs are reproducible and retried comparisons do not flap.
package compare

import (
	"fmt"

	"github.com/wanyvic/ordinal-comparator/internal/model"
)

// Comparator maps a pair of per-block receipt sets to a structured diff.
// Both receipt sets must be for the same height and chain; the caller
// guarantees this.
type Comparator interface {
	Compare(height uint64, primary, secondary model.Receipts) []model.DivergenceEntry
}

// ForProtocol returns the comparator for a protocol. The set of protocols is
// closed; adding one means adding a comparator here, not changing the engine.
func ForProtocol(p model.Protocol) (Comparator, error) {
	switch p {
	case model.Ordinal:
		return OrdinalComparator{}, nil
	case model.BRC20:
		return BRC20Comparator{}, nil
	default:
		return nil, fmt.Errorf("no comparator for protocol %q", p)
	}
}

func fieldMismatch(height uint64, key, field, primary, secondary string) model.DivergenceEntry {
	return model.DivergenceEntry{
		Height: height,
		Kind:   model.FieldMismatch,
		Key:    key,
		Detail: fmt.Sprintf("%s: primary=%q secondary=%q", field, primary, secondary),
	}
}
