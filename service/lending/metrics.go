package lending

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics operation counters and latencies
type Metrics struct {
	ops     *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewMetrics register lending metrics on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lendbook",
			Name:      "operations_total",
			Help:      "Mutating operations by name and result.",
		}, []string{"op", "result"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lendbook",
			Name:      "operation_duration_seconds",
			Help:      "Mutating operation latency including commit.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}

	reg.MustRegister(m.ops, m.latency)
	return m
}

func (m *Metrics) observe(op string, start time.Time, err error) {
	if m == nil {
		return
	}

	result := "ok"
	if err != nil {
		result = "error"
	}

	m.ops.WithLabelValues(op, result).Inc()
	m.latency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
