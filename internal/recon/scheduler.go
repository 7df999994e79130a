package recon

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wanyvic/ordinal-comparator/internal/clock"
	"github.com/wanyvic/ordinal-comparator/internal/compare"
	"github.com/wanyvic/ordinal-comparator/internal/model"
	"github.com/wanyvic/ordinal-comparator/internal/ordapi"
)

// retryPolicy bounds transient-error retries: attempts total tries, with
// exponential backoff between them.
type retryPolicy struct {
	attempts int
	base     time.Duration
	max      time.Duration
}

var defaultRetryPolicy = retryPolicy{
	attempts: 5,
	base:     time.Second,
	max:      8 * time.Second,
}

// Scheduler fans a height range out to a bounded worker pool and re-serializes
// completions into strictly increasing height order. Each task resolves the
// block hash from the primary endpoint, fetches receipts from both endpoints
// concurrently, and runs the comparator.
type Scheduler struct {
	primary    Endpoint
	secondary  Endpoint
	comparator compare.Comparator
	workers    int
	retry      retryPolicy
	logger     *zap.Logger
	metrics    SchedulerMetrics
}

// NewScheduler builds a scheduler over the two endpoints.
func NewScheduler(
	primary Endpoint,
	secondary Endpoint,
	comparator compare.Comparator,
	workers int,
	logger *zap.Logger,
	metrics SchedulerMetrics,
) *Scheduler {
	if workers <= 0 {
		workers = model.DefaultWorkerCount
	}
	return &Scheduler{
		primary:    primary,
		secondary:  secondary,
		comparator: comparator,
		workers:    workers,
		retry:      defaultRetryPolicy,
		logger:     logger,
		metrics:    metrics,
	}
}

// Run streams block results for [start, end] in strictly increasing height
// order. The returned channel closes once every dispatched height has been
// delivered: after the range is exhausted, after a fatal result stopped
// dispatch and in-flight tasks drained, or after ctx cancellation.
//
// Dispatch is backpressured: at most 2*workers heights are in flight or
// buffered for reordering at any time, so a stalled consumer pauses dispatch
// instead of growing memory.
func (s *Scheduler) Run(ctx context.Context, start, end uint64) <-chan model.BlockResult {
	out := make(chan model.BlockResult)
	heights := make(chan uint64)
	results := make(chan model.BlockResult, s.workers)
	slots := make(chan struct{}, 2*s.workers)
	stop := make(chan struct{})

	var stopOnce sync.Once
	halt := func() {
		stopOnce.Do(func() { close(stop) })
	}

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for h := range heights {
				res := s.processHeight(ctx, h)
				if res.Status == model.StatusFatal {
					halt()
				}
				results <- res
			}
		}()
	}

	go func() {
		defer close(heights)
		for h := start; h <= end; h++ {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case slots <- struct{}{}:
			}
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case heights <- h:
			}
			if h == end {
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(out)
		pending := make(map[uint64]model.BlockResult)
		next := start
		for res := range results {
			pending[res.Height] = res
			s.metrics.SetReorderDepth(len(pending))
			for {
				ready, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				s.metrics.SetReorderDepth(len(pending))
				select {
				case out <- ready:
				case <-ctx.Done():
					// Keep consuming so in-flight workers can finish and exit.
					for range results {
					}
					return
				}
				<-slots
				next++
			}
		}
		s.metrics.SetReorderDepth(0)
	}()

	return out
}

func (s *Scheduler) processHeight(ctx context.Context, height uint64) model.BlockResult {
	started := time.Now()
	res := s.reconcileHeight(ctx, height)
	s.metrics.ObserveTask(res.Status, started)

	switch res.Status {
	case model.StatusFetchFailed:
		s.logger.Warn("height left unverified",
			zap.Uint64("height", height),
			zap.String("reason", res.Reason))
	case model.StatusFatal:
		s.logger.Error("fatal error, stopping dispatch",
			zap.Uint64("height", height),
			zap.String("reason", res.Reason))
	}
	return res
}

func (s *Scheduler) reconcileHeight(ctx context.Context, height uint64) model.BlockResult {
	hash, err := fetchWithRetry(ctx, "block_hash", s.retry, s.metrics.ObserveRetry, func(ctx context.Context) (string, error) {
		return s.primary.BlockHash(ctx, height)
	})
	if err != nil {
		return failedResult(height, "", err)
	}

	var (
		primary, secondary model.Receipts
		perr, serr         error
		fetchWG            sync.WaitGroup
	)
	fetchWG.Add(2)
	go func() {
		defer fetchWG.Done()
		primary, perr = fetchWithRetry(ctx, "primary_receipts", s.retry, s.metrics.ObserveRetry, func(ctx context.Context) (model.Receipts, error) {
			return s.primary.BlockReceipts(ctx, hash)
		})
	}()
	go func() {
		defer fetchWG.Done()
		secondary, serr = fetchWithRetry(ctx, "secondary_receipts", s.retry, s.metrics.ObserveRetry, func(ctx context.Context) (model.Receipts, error) {
			return s.secondary.BlockReceipts(ctx, hash)
		})
	}()
	fetchWG.Wait()

	if perr != nil {
		return failedResult(height, hash, perr)
	}
	if serr != nil {
		return failedResult(height, hash, serr)
	}

	return model.BlockResult{
		Height:      height,
		Hash:        hash,
		Status:      model.StatusOK,
		Divergences: s.comparator.Compare(height, primary, secondary),
	}
}

// fetchWithRetry retries transient failures with exponential backoff. Schema
// errors and context cancellation surface immediately.
func fetchWithRetry[T any](
	ctx context.Context,
	operation string,
	policy retryPolicy,
	onRetry func(operation string),
	fn func(ctx context.Context) (T, error),
) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		if !ordapi.IsTransient(err) || attempt >= policy.attempts {
			return zero, err
		}
		onRetry(operation)
		if serr := clock.SleepWithContext(ctx, clock.BackoffDelay(policy.base, policy.max, attempt)); serr != nil {
			return zero, serr
		}
	}
}

func failedResult(height uint64, hash string, err error) model.BlockResult {
	status := model.StatusFetchFailed
	if ordapi.IsSchema(err) {
		status = model.StatusFatal
	}
	return model.BlockResult{
		Height: height,
		Hash:   hash,
		Status: status,
		Reason: err.Error(),
	}
}
