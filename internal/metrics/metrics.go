package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SubjectUser     = "user"
	SubjectTemplate = "template"

	OutcomeSuccess   = "success"
	OutcomeNoRatings = "no_ratings"
	OutcomeFailure   = "failure"
)

var (
	RatingsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratings_submitted_total",
			Help: "Total number of ratings stored, by direction",
		},
		[]string{"direction", "updated_from_reroll"},
	)

	InsightsScheduled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_aggregations_scheduled_total",
			Help: "Total number of insight aggregations queued by the rating cadence",
		},
		[]string{"subject"},
	)

	InsightAggregations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_aggregations_total",
			Help: "Total number of insight aggregation runs, by subject and outcome",
		},
		[]string{"subject", "outcome"},
	)

	InsightAggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "insight_aggregation_duration_seconds",
			Help:    "Duration of insight aggregation runs in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"subject"},
	)

	AnalyzerCallsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comment_analyzer_calls_skipped_total",
			Help: "Total number of comment analyses skipped because a bucket had no comments",
		},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests to external AI providers",
		},
		[]string{"upstream", "operation", "outcome"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state per upstream (0=closed, 1=half-open, 2=open)",
		},
		[]string{"upstream"},
	)

	ContentGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_generated_total",
			Help: "Total number of content items generated, by type and outcome",
		},
		[]string{"type", "outcome"},
	)
)

// RecordAggregation records the outcome and duration of one aggregation run.
func RecordAggregation(subject, outcome string, started time.Time) {
	InsightAggregations.WithLabelValues(subject, outcome).Inc()
	InsightAggregationDuration.WithLabelValues(subject).Observe(time.Since(started).Seconds())
}
