package internal

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	KindIcon       = "icon"
	KindFeature    = "feature_graphic"
	KindScreenshot = "screenshot"
)

// Metrics keeps per-run counters on a private registry so repeated runs in one process
// (watch mode, tests) never collide with the default registerer.
type Metrics struct {
	registry  *prometheus.Registry
	generated *prometheus.CounterVec
	failures  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "play_assets_generated_total",
				Help: "Total number of generated asset files.",
			},
			[]string{"kind"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "play_assets_failures_total",
				Help: "Total number of failed asset generations.",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "play_assets_generation_duration_milliseconds",
			Help:    "The duration of a single asset generation in milliseconds",
			Buckets: prometheus.ExponentialBuckets(5, 2, 12), // from 5ms to ~10 seconds
		}, []string{"kind"}),
	}
	m.registry.MustRegister(m.generated, m.failures, m.duration)
	return m
}

func (m *Metrics) Observe(kind string, start time.Time, err error) {
	if err != nil {
		m.failures.WithLabelValues(kind).Inc()
		return
	}
	m.generated.WithLabelValues(kind).Inc()
	m.duration.WithLabelValues(kind).Observe(float64(time.Since(start).Milliseconds()))
}

// WriteTextfile dumps the registry in the node exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
