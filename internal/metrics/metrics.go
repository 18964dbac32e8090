package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MikeSquared-Agency/Amplify/internal/scoring"
)

// Metrics holds the Prometheus collectors for evaluations.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	Scores      *prometheus.HistogramVec
	Duration    prometheus.Histogram
	Warnings    *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil registerer
// leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "amplify_evaluations_total",
			Help: "Post evaluations by scoring variant.",
		}, []string{"variant"}),
		Scores: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "amplify_evaluation_score",
			Help:    "Total score of evaluated posts.",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}, []string{"variant"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "amplify_evaluation_duration_seconds",
			Help:    "Time spent scoring a post.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		Warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "amplify_warnings_total",
			Help: "Warnings attached to evaluation results.",
		}, []string{"variant"}),
	}
	if reg != nil {
		reg.MustRegister(m.Evaluations, m.Scores, m.Duration, m.Warnings)
	}
	return m
}

// Observe records one evaluation.
func (m *Metrics) Observe(r scoring.ScoreResult, elapsed time.Duration) {
	variant := r.Variant.String()
	m.Evaluations.WithLabelValues(variant).Inc()
	m.Scores.WithLabelValues(variant).Observe(r.TotalScore)
	m.Duration.Observe(elapsed.Seconds())
	if n := len(r.Warnings); n > 0 {
		m.Warnings.WithLabelValues(variant).Add(float64(n))
	}
}
