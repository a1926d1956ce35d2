package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	StepAdvances   *prometheus.CounterVec
	FormsSubmitted prometheus.Counter
	SubmitFailures *prometheus.CounterVec
	DraftsCleared  prometheus.Counter
	RequestLatency *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		StepAdvances: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_step_advances_total",
			Help: "Total number of successful wizard step advances, by step.",
		}, []string{"step"}),
		FormsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "onboarding_forms_submitted_total",
			Help: "Total number of onboarding forms written to the document store.",
		}),
		SubmitFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_submit_failures_total",
			Help: "Total number of failed final submissions, by reason.",
		}, []string{"reason"}),
		DraftsCleared: promauto.NewCounter(prometheus.CounterOpts{
			Name: "onboarding_drafts_cleared_total",
			Help: "Total number of draft resets.",
		}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "onboarding_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}
