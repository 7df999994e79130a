package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wanyvic/ordinal-comparator/internal/model"
)

var (
	endpointRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "endpoint_client",
		Name:      "operations_total",
		Help:      "Count of indexer endpoint API operations.",
	}, []string{"operation", "role", "chain", "protocol", "status"})
	endpointRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ordinal_comparator",
		Subsystem: "endpoint_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of indexer endpoint API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "role", "chain", "protocol", "status"})
)

// EndpointClient tracks metrics for calls against one indexer endpoint.
// Role distinguishes the primary (reference) from the secondary (candidate).
type EndpointClient struct {
	role     string
	chain    model.Chain
	protocol model.Protocol
}

// NewEndpointClient constructs a metrics collector for one endpoint role.
func NewEndpointClient(role string, chain model.Chain, protocol model.Protocol) *EndpointClient {
	if role == "" {
		role = "unknown"
	}
	return &EndpointClient{role: role, chain: chain, protocol: protocol}
}

// Observe records a single endpoint API call outcome and duration.
func (m EndpointClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	endpointRequestsTotal.WithLabelValues(operation, m.role, string(m.chain), string(m.protocol), status).Inc()
	endpointRequestDuration.WithLabelValues(operation, m.role, string(m.chain), string(m.protocol), status).
		Observe(time.Since(started).Seconds())
}
