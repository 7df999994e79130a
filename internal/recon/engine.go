package recon

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wanyvic/ordinal-comparator/internal/model"
)

// RunState is the lifecycle state of one reconciliation run.
type RunState string

var (
	StateInitializing   RunState = "initializing"
	StateResolvingRange RunState = "resolving_range"
	StateRunning        RunState = "running"
	StateCompleted      RunState = "completed"
	StateCancelled      RunState = "cancelled"
	StateFailed         RunState = "failed"
)

const summaryBucketSize = 10_000

// Summary aggregates a run's outcome. ByBucket groups divergence entries by
// 10k-height buckets keyed by the bucket's first height.
type Summary struct {
	State            RunState
	FirstHeight      uint64
	LastFinalized    uint64
	BlocksOK         uint64
	BlocksUnverified uint64
	DivergentBlocks  uint64
	ByKind           map[model.DivergenceKind]uint64
	ByBucket         map[uint64]uint64
}

func newSummary() *Summary {
	return &Summary{
		ByKind:   make(map[model.DivergenceKind]uint64),
		ByBucket: make(map[uint64]uint64),
	}
}

// TotalDivergences returns the number of divergence entries across all kinds.
func (s *Summary) TotalDivergences() uint64 {
	var total uint64
	for _, n := range s.ByKind {
		total += n
	}
	return total
}

func (s *Summary) observe(res model.BlockResult) {
	switch res.Status {
	case model.StatusOK:
		s.BlocksOK++
		if len(res.Divergences) > 0 {
			s.DivergentBlocks++
		}
		for _, d := range res.Divergences {
			s.ByKind[d.Kind]++
			s.ByBucket[d.Height/summaryBucketSize*summaryBucketSize]++
		}
	case model.StatusFetchFailed:
		s.BlocksUnverified++
	}
	s.LastFinalized = res.Height
}

// Engine orchestrates one reconciliation run: it resolves the effective height
// range, drives the scheduler over it, and finalizes each ordered result by
// emitting it to the report sink and advancing the checkpoint. The engine is
// the only writer of the checkpoint store for its run.
type Engine struct {
	cfg       model.RunConfig
	stream    ResultStream
	primary   Endpoint
	secondary Endpoint
	store     CheckpointStore
	sink      ReportSink
	retry     retryPolicy
	logger    *zap.Logger
	metrics   EngineMetrics
}

// NewEngine validates the config and builds an engine around the given
// dependencies.
func NewEngine(
	cfg model.RunConfig,
	stream ResultStream,
	primary Endpoint,
	secondary Endpoint,
	store CheckpointStore,
	sink ReportSink,
	logger *zap.Logger,
	metrics EngineMetrics,
) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run config: %w", err)
	}
	return &Engine{
		cfg:       cfg,
		stream:    stream,
		primary:   primary,
		secondary: secondary,
		store:     store,
		sink:      sink,
		retry:     defaultRetryPolicy,
		logger:    logger,
		metrics:   metrics,
	}, nil
}

// Run executes the reconciliation until the range is exhausted, a fatal error
// occurs, or ctx is canceled. The returned summary always describes the
// terminal state; the error is nil only for a completed run.
func (e *Engine) Run(ctx context.Context) (*Summary, error) {
	summary := newSummary()

	e.logger.Info("initializing run",
		zap.String("state", string(StateInitializing)),
		zap.String("chain", string(e.cfg.Chain)),
		zap.String("protocol", string(e.cfg.Protocol)),
		zap.Int("workers", e.cfg.Workers),
		zap.Bool("tolerate_gaps", e.cfg.TolerateGaps))

	start, err := e.resolveStart(ctx)
	if err != nil {
		return e.finish(summary, StateFailed, err)
	}

	e.logger.Info("resolving range", zap.String("state", string(StateResolvingRange)))
	end, err := e.resolveEnd(ctx)
	if err != nil {
		return e.finish(summary, StateFailed, fmt.Errorf("resolve range: %w", err))
	}

	summary.FirstHeight = start
	if start > end {
		e.logger.Info("nothing to reconcile",
			zap.Uint64("start", start),
			zap.Uint64("end", end))
		return e.finish(summary, StateCompleted, nil)
	}

	e.logger.Info("reconciling range",
		zap.String("state", string(StateRunning)),
		zap.Uint64("start", start),
		zap.Uint64("end", end))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	results := e.stream.Run(runCtx, start, end)

	for res := range results {
		if ctx.Err() != nil {
			drain(cancel, results)
			return e.finish(summary, StateCancelled, ctx.Err())
		}

		started := time.Now()
		err := e.finalize(ctx, res, summary)
		e.metrics.ObserveFinalize(res, started)
		if err != nil {
			drain(cancel, results)
			if ctx.Err() != nil {
				return e.finish(summary, StateCancelled, ctx.Err())
			}
			return e.finish(summary, StateFailed, err)
		}
	}

	if ctx.Err() != nil {
		return e.finish(summary, StateCancelled, ctx.Err())
	}
	return e.finish(summary, StateCompleted, nil)
}

// resolveStart picks the effective start height: the configured start (or the
// protocol's first activation height when unset), advanced past a matching
// checkpoint.
func (e *Engine) resolveStart(ctx context.Context) (uint64, error) {
	start := e.cfg.StartHeight
	if start == 0 {
		first, err := e.cfg.Chain.FirstProtocolHeight(e.cfg.Protocol)
		if err != nil {
			return 0, err
		}
		start = first
	}

	cp, err := e.store.Load(ctx, e.cfg.CheckpointKey())
	if err != nil {
		return 0, fmt.Errorf("load checkpoint: %w", err)
	}
	if cp != nil && cp.LastReconciledHeight+1 > start {
		start = cp.LastReconciledHeight + 1
		e.logger.Info("resuming from checkpoint",
			zap.Uint64("last_reconciled_height", cp.LastReconciledHeight),
			zap.Uint64("start", start))
	}
	return start, nil
}

// resolveEnd queries both endpoints for their chain tip and takes the minimum.
// A configured end height beyond the common tip is clamped: the run cannot
// validate heights either side has not observed yet.
func (e *Engine) resolveEnd(ctx context.Context) (uint64, error) {
	primaryTip, err := e.endpointTip(ctx, e.primary)
	if err != nil {
		return 0, fmt.Errorf("primary tip: %w", err)
	}
	secondaryTip, err := e.endpointTip(ctx, e.secondary)
	if err != nil {
		return 0, fmt.Errorf("secondary tip: %w", err)
	}

	commonTip := primaryTip
	if secondaryTip < commonTip {
		commonTip = secondaryTip
	}
	e.logger.Info("resolved chain tips",
		zap.Uint64("primary_tip", primaryTip),
		zap.Uint64("secondary_tip", secondaryTip),
		zap.Uint64("common_tip", commonTip))

	if e.cfg.EndHeight == 0 {
		return commonTip, nil
	}
	if e.cfg.EndHeight > commonTip {
		e.logger.Warn("configured end height beyond common tip, clamping",
			zap.Uint64("configured_end", e.cfg.EndHeight),
			zap.Uint64("common_tip", commonTip))
		return commonTip, nil
	}
	return e.cfg.EndHeight, nil
}

func (e *Engine) endpointTip(ctx context.Context, ep Endpoint) (uint64, error) {
	return fetchWithRetry(ctx, "tip", e.retry, func(string) {}, func(ctx context.Context) (uint64, error) {
		return ep.Tip(ctx)
	})
}

func (e *Engine) finalize(ctx context.Context, res model.BlockResult, summary *Summary) error {
	switch res.Status {
	case model.StatusOK:
		if err := e.sink.Emit(ctx, res); err != nil {
			return fmt.Errorf("emit result for height %d: %w", res.Height, err)
		}
		if err := e.saveCheckpoint(ctx, res.Height); err != nil {
			return err
		}
		summary.observe(res)
		return nil

	case model.StatusFetchFailed:
		if err := e.sink.Emit(ctx, res); err != nil {
			return fmt.Errorf("emit result for height %d: %w", res.Height, err)
		}
		if !e.cfg.TolerateGaps {
			return fmt.Errorf("height %d unverified: %s", res.Height, res.Reason)
		}
		e.logger.Warn("advancing past unverified height",
			zap.Uint64("height", res.Height),
			zap.String("reason", res.Reason))
		if err := e.saveCheckpoint(ctx, res.Height); err != nil {
			return err
		}
		summary.observe(res)
		return nil

	case model.StatusFatal:
		// Best effort: record the fatal height before the run stops.
		_ = e.sink.Emit(ctx, res)
		return fmt.Errorf("fatal error at height %d: %s", res.Height, res.Reason)

	default:
		return fmt.Errorf("unknown block status %q at height %d", res.Status, res.Height)
	}
}

func (e *Engine) saveCheckpoint(ctx context.Context, height uint64) error {
	cp := model.Checkpoint{
		Key:                  e.cfg.CheckpointKey(),
		LastReconciledHeight: height,
		UpdatedAt:            time.Now().UTC(),
	}
	if err := e.store.Save(ctx, cp); err != nil {
		return fmt.Errorf("save checkpoint at height %d: %w", height, err)
	}
	e.metrics.SetCheckpointHeight(height)
	return nil
}

func (e *Engine) finish(summary *Summary, state RunState, err error) (*Summary, error) {
	summary.State = state
	e.metrics.ObserveRunState(string(state))

	fields := []zap.Field{
		zap.Uint64("last_finalized", summary.LastFinalized),
		zap.Uint64("blocks_ok", summary.BlocksOK),
		zap.Uint64("blocks_unverified", summary.BlocksUnverified),
		zap.Uint64("divergent_blocks", summary.DivergentBlocks),
		zap.Uint64("divergences", summary.TotalDivergences()),
	}
	switch state {
	case StateCompleted:
		e.logger.Info("run completed", fields...)
	case StateCancelled:
		e.logger.Warn("run cancelled", fields...)
	default:
		e.logger.Error("run failed", append(fields, zap.Error(err))...)
	}
	return summary, err
}

// drain cancels the stream and discards whatever it still delivers so worker
// goroutines are not left blocked on a send.
func drain(cancel context.CancelFunc, results <-chan model.BlockResult) {
	cancel()
	go func() {
		for range results {
		}
	}()
}
