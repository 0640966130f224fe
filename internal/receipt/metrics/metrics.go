package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the receipt domain. A nil
// *Metrics is valid and records nothing, so unit tests can skip registry
// setup entirely.
type Metrics struct {
	ReceiptsProcessed  prometheus.Counter
	ValidationFailures prometheus.Counter
	PointsComputed     prometheus.Counter
	LookupMisses       prometheus.Counter
}

// New creates and registers all receipt metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		ReceiptsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tally_receipts_processed_total",
			Help: "Total number of receipts accepted and stored",
		}),
		ValidationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tally_receipt_validation_failures_total",
			Help: "Total number of receipt submissions rejected by validation",
		}),
		PointsComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tally_receipt_points_computed_total",
			Help: "Total number of successful points calculations",
		}),
		LookupMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tally_receipt_lookup_misses_total",
			Help: "Total number of points lookups for unknown receipt IDs",
		}),
	}
}

// IncReceiptsProcessed increments the processed counter by 1.
func (m *Metrics) IncReceiptsProcessed() {
	if m != nil {
		m.ReceiptsProcessed.Inc()
	}
}

// IncValidationFailures increments the validation failure counter by 1.
func (m *Metrics) IncValidationFailures() {
	if m != nil {
		m.ValidationFailures.Inc()
	}
}

// IncPointsComputed increments the points calculation counter by 1.
func (m *Metrics) IncPointsComputed() {
	if m != nil {
		m.PointsComputed.Inc()
	}
}

// IncLookupMisses increments the unknown-ID counter by 1.
func (m *Metrics) IncLookupMisses() {
	if m != nil {
		m.LookupMisses.Inc()
	}
}
