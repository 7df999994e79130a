package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "checkpoint_store",
		Name:      "operations_total",
		Help:      "Count of checkpoint store operations.",
	}, []string{"backend", "operation", "status"})
	storeOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "checkpoint_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of checkpoint store operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend", "operation", "status"})
)

// CheckpointStore tracks metrics for checkpoint load/save calls.
type CheckpointStore struct {
	backend string
}

// NewCheckpointStore constructs a metrics collector for a store backend.
func NewCheckpointStore(backend string) *CheckpointStore {
	if backend == "" {
		backend = "unknown"
	}
	return &CheckpointStore{backend: backend}
}

// Observe records a single store operation outcome and duration.
func (m CheckpointStore) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	storeOperationsTotal.WithLabelValues(m.backend, operation, status).Inc()
	storeOperationDuration.WithLabelValues(m.backend, operation, status).
		Observe(time.Since(started).Seconds())
}
