package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wanyvic/ordinal-comparator/internal/model"
)

var (
	engineBlocksFinalizedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "engine",
		Name:      "blocks_finalized_total",
		Help:      "Count of blocks finalized at the ordered boundary, by status.",
	}, []string{"chain", "protocol", "status"})

	engineDivergencesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "engine",
		Name:      "divergences_total",
		Help:      "Count of divergence entries emitted, by kind.",
	}, []string{"chain", "protocol", "kind"})

	engineCheckpointHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "engine",
		Name:      "checkpoint_height",
		Help:      "Last reconciled block height persisted to the checkpoint store.",
	}, []string{"chain", "protocol"})

	engineRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "engine",
		Name:      "runs_total",
		Help:      "Count of reconciliation runs by terminal state.",
	}, []string{"chain", "protocol", "state"})

	engineFinalizeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "engine",
		Name:      "finalize_duration_seconds",
		Help:      "Duration of finalizing one in-order block result.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "protocol"})
)

// Engine tracks metrics for the reconciliation engine.
type Engine struct {
	chain    model.Chain
	protocol model.Protocol
}

// NewEngine constructs a metrics collector for the engine.
func NewEngine(chain model.Chain, protocol model.Protocol) *Engine {
	return &Engine{chain: chain, protocol: protocol}
}

// ObserveFinalize records one block finalized in height order.
func (m Engine) ObserveFinalize(res model.BlockResult, started time.Time) {
	engineBlocksFinalizedTotal.WithLabelValues(string(m.chain), string(m.protocol), string(res.Status)).Inc()
	engineFinalizeDuration.WithLabelValues(string(m.chain), string(m.protocol)).
		Observe(time.Since(started).Seconds())
	for _, d := range res.Divergences {
		engineDivergencesTotal.WithLabelValues(string(m.chain), string(m.protocol), string(d.Kind)).Inc()
	}
}

// SetCheckpointHeight records the latest persisted checkpoint height.
func (m Engine) SetCheckpointHeight(height uint64) {
	engineCheckpointHeight.WithLabelValues(string(m.chain), string(m.protocol)).Set(float64(height))
}

// ObserveRunState records a terminal run state.
func (m Engine) ObserveRunState(state string) {
	engineRunsTotal.WithLabelValues(string(m.chain), string(m.protocol), state).Inc()
}
