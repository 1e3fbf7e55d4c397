package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records step outcomes and placed orders.
type CheckoutMetrics struct {
	stepFailures *prometheus.CounterVec
	stepAdvances *prometheus.CounterVec
	ordersPlaced prometheus.Counter
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	stepFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_step_failures",
		Help: "Validation failures per checkout step.",
	}, []string{"step"})
	stepAdvances := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_step_advances",
		Help: "Successful step transitions per checkout step.",
	}, []string{"step"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_orders_placed",
		Help: "Orders placed through the checkout machine.",
	})
	reg.MustRegister(stepFailures, stepAdvances, ordersPlaced)
	return &CheckoutMetrics{
		stepFailures: stepFailures,
		stepAdvances: stepAdvances,
		ordersPlaced: ordersPlaced,
	}
}

// IncStepFailure increments the failure counter for the named step.
func (c *CheckoutMetrics) IncStepFailure(step string) {
	if c == nil || c.stepFailures == nil {
		return
	}
	c.stepFailures.WithLabelValues(normalizeLabel(step)).Inc()
}

// IncStepAdvance increments the advance counter for the named step.
func (c *CheckoutMetrics) IncStepAdvance(step string) {
	if c == nil || c.stepAdvances == nil {
		return
	}
	c.stepAdvances.WithLabelValues(normalizeLabel(step)).Inc()
}

// IncOrderPlaced increments the placed-order counter.
func (c *CheckoutMetrics) IncOrderPlaced() {
	if c == nil || c.ordersPlaced == nil {
		return
	}
	c.ordersPlaced.Inc()
}

// PersistenceMetrics records the outcome of background snapshot writes.
type PersistenceMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewPersistenceMetrics registers the persistence metrics on the provided registerer.
func NewPersistenceMetrics(reg prometheus.Registerer) *PersistenceMetrics {
	if reg == nil {
		return &PersistenceMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "persistence_write_duration_seconds",
		Help:    "Duration of snapshot writes in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"slot"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "persistence_write_success",
		Help: "Successful snapshot writes.",
	}, []string{"slot"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "persistence_write_failure",
		Help: "Failed snapshot writes.",
	}, []string{"slot"})
	reg.MustRegister(duration, success, failure)
	return &PersistenceMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named slot.
func (p *PersistenceMetrics) ObserveDuration(slot string, duration time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(normalizeLabel(slot)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named slot.
func (p *PersistenceMetrics) IncSuccess(slot string) {
	if p == nil || p.success == nil {
		return
	}
	p.success.WithLabelValues(normalizeLabel(slot)).Inc()
}

// IncFailure increments the failure counter for the named slot.
func (p *PersistenceMetrics) IncFailure(slot string) {
	if p == nil || p.failure == nil {
		return
	}
	p.failure.WithLabelValues(normalizeLabel(slot)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
