package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reportSinkOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "report_sink",
		Name:      "operations_total",
		Help:      "Count of report sink write operations.",
	}, []string{"sink", "operation", "status"})
	reportSinkOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "report_sink",
		Name:      "operation_duration_seconds",
		Help:      "Duration of report sink write operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"sink", "operation", "status"})
)

// ReportSink tracks metrics for report emission.
type ReportSink struct {
	sink string
}

// NewReportSink constructs a metrics collector for a named sink.
func NewReportSink(sink string) *ReportSink {
	if sink == "" {
		sink = "unknown"
	}
	return &ReportSink{sink: sink}
}

// Observe records a single sink operation outcome and duration.
func (m ReportSink) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	reportSinkOperationsTotal.WithLabelValues(m.sink, operation, status).Inc()
	reportSinkOperationDuration.WithLabelValues(m.sink, operation, status).
		Observe(time.Since(started).Seconds())
}
