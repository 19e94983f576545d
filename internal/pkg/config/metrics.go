package config

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics surfaces configuration-loading health:
//   - config_load_timestamp_seconds: when configuration was last loaded
//   - config_fallbacks_total: fallbacks applied, by key
//
// A nil *Metrics is a valid no-op receiver so loaders work without metrics.
type Metrics struct {
	LoadTimestamp  prometheus.Gauge
	FallbacksTotal *prometheus.CounterVec
}

// NewMetrics registers the configuration metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		LoadTimestamp: f.NewGauge(prometheus.GaugeOpts{
			Name: "config_load_timestamp_seconds",
			Help: "Unix timestamp of the last configuration load",
		}),
		FallbacksTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "config_fallbacks_total",
			Help: "Total configuration fallbacks applied, by key",
		}, []string{"key"}),
	}
}

// RecordLoad marks the time configuration was loaded.
func (m *Metrics) RecordLoad() {
	if m == nil {
		return
	}
	m.LoadTimestamp.Set(float64(time.Now().Unix()))
}

// RecordFallback counts one fallback for key.
func (m *Metrics) RecordFallback(key string) {
	if m == nil {
		return
	}
	m.FallbacksTotal.WithLabelValues(key).Inc()
}
