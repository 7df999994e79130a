package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wanyvic/ordinal-comparator/internal/model"
)

var (
	schedulerTasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "scheduler",
		Name:      "tasks_total",
		Help:      "Count of per-height fetch-compare tasks by outcome.",
	}, []string{"chain", "protocol", "status"})

	schedulerTaskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "scheduler",
		Name:      "task_duration_seconds",
		Help:      "Duration of one fetch-fetch-compare task.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "protocol", "status"})

	schedulerRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "scheduler",
		Name:      "fetch_retries_total",
		Help:      "Count of transient fetch retries.",
	}, []string{"chain", "protocol", "operation"})

	schedulerReorderDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "scheduler",
		Name:      "reorder_buffer_depth",
		Help:      "Completed results waiting for a lower height to finish.",
	}, []string{"chain", "protocol"})
)

// Scheduler tracks metrics for the block task scheduler.
type Scheduler struct {
	chain    model.Chain
	protocol model.Protocol
}

// NewScheduler constructs a metrics collector for the scheduler.
func NewScheduler(chain model.Chain, protocol model.Protocol) *Scheduler {
	return &Scheduler{chain: chain, protocol: protocol}
}

// ObserveTask records one completed task.
func (m Scheduler) ObserveTask(status model.BlockStatus, started time.Time) {
	schedulerTasksTotal.WithLabelValues(string(m.chain), string(m.protocol), string(status)).Inc()
	schedulerTaskDuration.WithLabelValues(string(m.chain), string(m.protocol), string(status)).
		Observe(time.Since(started).Seconds())
}

// ObserveRetry records one transient fetch retry.
func (m Scheduler) ObserveRetry(operation string) {
	schedulerRetriesTotal.WithLabelValues(string(m.chain), string(m.protocol), operation).Inc()
}

// SetReorderDepth records the current reordering buffer depth.
func (m Scheduler) SetReorderDepth(depth int) {
	schedulerReorderDepth.WithLabelValues(string(m.chain), string(m.protocol)).Set(float64(depth))
}
