package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for hand evaluation and the showdown feed.
type Metrics struct {
	// Evaluations by resulting category label
	Evaluations *prometheus.CounterVec

	// Rejected pools by reason: "size", "duplicate", "card"
	EvaluationErrors *prometheus.CounterVec

	EvaluateLatency prometheus.Histogram

	Showdowns prometheus.Counter

	// Connected websocket feed clients
	FeedClients prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "casino_evaluations_total",
			Help: "Total hand evaluations by category",
		}, []string{"category"}),

		EvaluationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "casino_evaluation_errors_total",
			Help: "Total rejected hand evaluations by reason",
		}, []string{"reason"}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "casino_evaluate_duration_seconds",
			Help:    "Duration of hand evaluation requests",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),

		Showdowns: factory.NewCounter(prometheus.CounterOpts{
			Name: "casino_showdowns_total",
			Help: "Total showdowns settled",
		}),

		FeedClients: factory.NewGauge(prometheus.GaugeOpts{
			Name: "casino_feed_clients",
			Help: "Websocket clients subscribed to the showdown feed",
		}),
	}
}

// IncrementEvaluation records a successful evaluation.
func (m *Metrics) IncrementEvaluation(category string) {
	if m != nil {
		m.Evaluations.WithLabelValues(category).Inc()
	}
}

// IncrementEvaluationError records a rejected pool.
func (m *Metrics) IncrementEvaluationError(reason string) {
	if m != nil {
		m.EvaluationErrors.WithLabelValues(reason).Inc()
	}
}

// ObserveEvaluateLatency records the duration of one evaluation.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// IncrementShowdown records a settled showdown.
func (m *Metrics) IncrementShowdown() {
	if m != nil {
		m.Showdowns.Inc()
	}
}

// SetFeedClients records the current number of feed subscribers.
func (m *Metrics) SetFeedClients(n int) {
	if m != nil {
		m.FeedClients.Set(float64(n))
	}
}
