package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// LeadsScored counts scored leads partitioned by qualification tier.
	LeadsScored = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leadscore",
		Name:      "leads_scored_total",
		Help:      "Number of leads scored, by qualification tier.",
	}, []string{"tier"})

	// ScoringDuration observes how long scoring a single profile takes.
	ScoringDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "leadscore",
		Name:      "scoring_duration_seconds",
		Help:      "Time spent scoring a single profile.",
		Buckets:   DefaultBuckets,
	})

	// BatchItemsProcessed counts batch items by result.
	BatchItemsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leadscore",
		Name:      "batch_items_processed_total",
		Help:      "Number of batch items processed, by result.",
	}, []string{"result"})
)
