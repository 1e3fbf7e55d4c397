package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCheckoutMetricsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCheckoutMetrics(reg)

	m.IncStepAdvance("identity")
	m.IncStepAdvance("identity")
	m.IncStepFailure("payment")
	m.IncOrderPlaced()

	if got := testutil.ToFloat64(m.stepAdvances.WithLabelValues("identity")); got != 2 {
		t.Fatalf("expected 2 advances, got %v", got)
	}
	if got := testutil.ToFloat64(m.stepFailures.WithLabelValues("payment")); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
	if got := testutil.ToFloat64(m.ordersPlaced); got != 1 {
		t.Fatalf("expected 1 order, got %v", got)
	}
}

func TestPersistenceMetricsEmptyLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPersistenceMetrics(reg)

	m.IncFailure("")
	m.ObserveDuration("cart_items", 50*time.Millisecond)

	if got := testutil.ToFloat64(m.failure.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty slot to count under unknown, got %v", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var c *CheckoutMetrics
	var p *PersistenceMetrics

	c.IncStepAdvance("identity")
	c.IncStepFailure("identity")
	c.IncOrderPlaced()
	p.IncSuccess("cart_items")
	p.IncFailure("cart_items")
	p.ObserveDuration("cart_items", time.Second)

	unregistered := NewCheckoutMetrics(nil)
	unregistered.IncOrderPlaced()
}
