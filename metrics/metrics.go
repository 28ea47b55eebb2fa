// Package metrics exposes Prometheus instruments for Tsetlin machine training
package metrics

import "github.com/prometheus/client_golang/prometheus"
import "github.com/prometheus/client_golang/prometheus/promauto"

import "github.com/neurlang/tsetlin/tsetlin"

// Metrics holds the training instruments. Safe for concurrent use.
type Metrics struct {
	Fits        prometheus.Counter
	Feedback    *prometheus.CounterVec // by type: "I" or "II"
	Resets      prometheus.Counter
	Predictions prometheus.Counter

	Accuracy      prometheus.Gauge
	EpochDuration prometheus.Histogram
}

// New creates the instruments and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Fits: f.NewCounter(prometheus.CounterOpts{
			Name: "tsetlin_fits_total",
			Help: "Samples fitted.",
		}),
		Feedback: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tsetlin_feedback_total",
			Help: "Clauses given feedback, by feedback type.",
		}, []string{"type"}),
		Resets: f.NewCounter(prometheus.CounterOpts{
			Name: "tsetlin_clause_resets_total",
			Help: "Dead clause populations redrawn.",
		}),
		Predictions: f.NewCounter(prometheus.CounterOpts{
			Name: "tsetlin_predictions_total",
			Help: "Predictions made during evaluation.",
		}),
		Accuracy: f.NewGauge(prometheus.GaugeOpts{
			Name: "tsetlin_accuracy_ratio",
			Help: "Accuracy on the evaluation set after the last epoch.",
		}),
		EpochDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tsetlin_epoch_duration_seconds",
			Help:    "Wall time of one training epoch.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

// Observe adds the difference between two snapshots of machine counters
func (m *Metrics) Observe(prev, cur tsetlin.Stats) {
	m.Fits.Add(float64(cur.Fits - prev.Fits))
	m.Feedback.WithLabelValues("I").Add(float64(cur.TypeI - prev.TypeI))
	m.Feedback.WithLabelValues("II").Add(float64(cur.TypeII - prev.TypeII))
	m.Resets.Add(float64(cur.Resets - prev.Resets))
}
