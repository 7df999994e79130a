// Package report renders finalized block results into the run's output
// streams: structured logs and, optionally, durable ClickHouse tables.
package report

import (
	"context"
	"time"

	"github.com/wanyvic/ordinal-comparator/internal/model"
)

type (
	// Sink receives finalized block results in strictly increasing height
	// order and must not reorder them.
	Sink interface {
		Emit(ctx context.Context, res model.BlockResult) error
		Close(ctx context.Context) error
	}

	// Metrics records metrics for sink operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// MultiSink fans each result out to every sink in order.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink combines sinks into one. A nil or empty list is valid and
// discards everything.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Emit forwards the result to every sink, stopping at the first failure.
func (m *MultiSink) Emit(ctx context.Context, res model.BlockResult) error {
	for _, s := range m.sinks {
		if err := s.Emit(ctx, res); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink, returning the first error encountered.
func (m *MultiSink) Close(ctx context.Context) error {
	var first error
	for _, s := range m.sinks {
		if err := s.Close(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}
