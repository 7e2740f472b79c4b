package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AdvisorMetrics records outcomes for the generative advisory backend calls.
type AdvisorMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	fallback *prometheus.CounterVec
}

// NewAdvisorMetrics registers the advisory metrics on the provided registerer.
func NewAdvisorMetrics(reg prometheus.Registerer) *AdvisorMetrics {
	if reg == nil {
		return &AdvisorMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "advisor_call_duration_seconds",
		Help:    "Duration of advisory backend calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_call_success",
		Help: "Advisory backend calls that returned a usable payload.",
	}, []string{"op"})
	fallback := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_call_fallback",
		Help: "Advisory backend calls absorbed into a fallback value.",
	}, []string{"op"})
	reg.MustRegister(duration, success, fallback)
	return &AdvisorMetrics{
		duration: duration,
		success:  success,
		fallback: fallback,
	}
}

// ObserveDuration records the duration for the named operation.
func (a *AdvisorMetrics) ObserveDuration(op string, duration time.Duration) {
	if a == nil || a.duration == nil {
		return
	}
	a.duration.WithLabelValues(normalizeLabel(op)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named operation.
func (a *AdvisorMetrics) IncSuccess(op string) {
	if a == nil || a.success == nil {
		return
	}
	a.success.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncFallback increments the fallback counter for the named operation.
func (a *AdvisorMetrics) IncFallback(op string) {
	if a == nil || a.fallback == nil {
		return
	}
	a.fallback.WithLabelValues(normalizeLabel(op)).Inc()
}

func normalizeLabel(op string) string {
	if op == "" {
		return "unknown"
	}
	return op
}
