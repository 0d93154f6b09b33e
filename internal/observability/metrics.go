package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector exports solve events as Prometheus series.
type Collector struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	steps    *prometheus.HistogramVec
}

// NewCollector registers the algoviz series on reg. Pass
// prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		total: f.NewCounterVec(prometheus.CounterOpts{
			Name: "algoviz_solve_total",
			Help: "Solve requests by family, variant and outcome",
		}, []string{"family", "variant", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "algoviz_solve_duration_seconds",
			Help:    "Solve duration in seconds, including decode and validation",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
		}, []string{"family", "variant"}),
		steps: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "algoviz_trace_steps",
			Help:    "Number of steps recorded per successful solve",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"family", "variant"}),
	}
}

func (c *Collector) ObserveSolve(ev SolveEvent) {
	if c == nil {
		return
	}
	c.total.WithLabelValues(ev.Family, ev.Variant, ev.Outcome).Inc()
	c.duration.WithLabelValues(ev.Family, ev.Variant).Observe(ev.Duration.Seconds())
	if ev.Outcome == OutcomeOK {
		c.steps.WithLabelValues(ev.Family, ev.Variant).Observe(float64(ev.Steps))
	}
}
