package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsRecord(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementEvaluation("Flush")
	m.IncrementEvaluation("Flush")
	m.IncrementEvaluationError("size")
	m.IncrementShowdown()
	m.SetFeedClients(3)
	m.ObserveEvaluateLatency(time.Microsecond)

	if got := testutil.ToFloat64(m.Evaluations.WithLabelValues("Flush")); got != 2 {
		t.Fatalf("expected 2 flush evaluations, got %v", got)
	}
	if got := testutil.ToFloat64(m.EvaluationErrors.WithLabelValues("size")); got != 1 {
		t.Fatalf("expected 1 size error, got %v", got)
	}
	if got := testutil.ToFloat64(m.Showdowns); got != 1 {
		t.Fatalf("expected 1 showdown, got %v", got)
	}
	if got := testutil.ToFloat64(m.FeedClients); got != 3 {
		t.Fatalf("expected 3 feed clients, got %v", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.IncrementEvaluation("Flush")
	m.IncrementEvaluationError("size")
	m.ObserveEvaluateLatency(time.Second)
	m.IncrementShowdown()
	m.SetFeedClients(1)
}
