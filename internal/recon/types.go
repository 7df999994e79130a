// Package recon implements the reconciliation engine: a bounded worker pool
// that fetches per-block receipts from two indexer endpoints, compares them,
// and finalizes results in strictly increasing height order.
package recon

import (
	"context"
	"time"

	"github.com/wanyvic/ordinal-comparator/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Endpoint is the fetch capability of one indexer endpoint.
	Endpoint interface {
		Tip(ctx context.Context) (uint64, error)
		BlockHash(ctx context.Context, height uint64) (string, error)
		BlockReceipts(ctx context.Context, blockHash string) (model.Receipts, error)
	}

	// CheckpointStore persists the highest fully reconciled height per run key.
	CheckpointStore interface {
		Load(ctx context.Context, key model.CheckpointKey) (*model.Checkpoint, error)
		Save(ctx context.Context, cp model.Checkpoint) error
	}

	// ReportSink receives finalized block results in height order.
	ReportSink interface {
		Emit(ctx context.Context, res model.BlockResult) error
	}

	// ResultStream produces ordered block results for a height range.
	ResultStream interface {
		Run(ctx context.Context, start, end uint64) <-chan model.BlockResult
	}

	// SchedulerMetrics records scheduler-level metrics.
	SchedulerMetrics interface {
		ObserveTask(status model.BlockStatus, started time.Time)
		ObserveRetry(operation string)
		SetReorderDepth(depth int)
	}

	// EngineMetrics records engine-level metrics.
	EngineMetrics interface {
		ObserveFinalize(res model.BlockResult, started time.Time)
		SetCheckpointHeight(height uint64)
		ObserveRunState(state string)
	}
)
