package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CounterFamily is a fixed enumeration of counter series created eagerly at
// registration time, keyed by a single label value. Lookups never create a
// series: every key exists before the first mutation, and unknown keys are
// dropped silently.
type CounterFamily struct {
	keys     []string
	counters map[string]prometheus.Counter
}

// NewCounterFamily registers one child series per key under the given label.
func NewCounterFamily(f promauto.Factory, opts prometheus.CounterOpts, label string, keys []string) *CounterFamily {
	vec := f.NewCounterVec(opts, []string{label})
	counters := make(map[string]prometheus.Counter, len(keys))
	for _, k := range keys {
		counters[k] = vec.WithLabelValues(k)
	}
	return &CounterFamily{
		keys:     append([]string(nil), keys...),
		counters: counters,
	}
}

// Inc increments the series for key.
func (cf *CounterFamily) Inc(key string) {
	if c, ok := cf.counters[key]; ok {
		c.Inc()
	}
}

// Keys returns the enumerated keys in registration order.
func (cf *CounterFamily) Keys() []string { return append([]string(nil), cf.keys...) }

// TimerFamily is the duration counterpart of CounterFamily: one histogram
// series per enumerated key, created eagerly at registration time.
type TimerFamily struct {
	keys   []string
	timers map[string]prometheus.Observer
}

// NewTimerFamily registers one child histogram per key under the given label.
func NewTimerFamily(f promauto.Factory, opts prometheus.HistogramOpts, label string, keys []string) *TimerFamily {
	vec := f.NewHistogramVec(opts, []string{label})
	timers := make(map[string]prometheus.Observer, len(keys))
	for _, k := range keys {
		timers[k] = vec.WithLabelValues(k)
	}
	return &TimerFamily{
		keys:   append([]string(nil), keys...),
		timers: timers,
	}
}

// Observe records a duration sample into the series for key.
func (tf *TimerFamily) Observe(key string, d time.Duration) {
	if t, ok := tf.timers[key]; ok {
		t.Observe(d.Seconds())
	}
}

// Keys returns the enumerated keys in registration order.
func (tf *TimerFamily) Keys() []string { return append([]string(nil), tf.keys...) }

// InitLabelCombinations eagerly instantiates every combination of the given
// label value enumerations on vec, so that the full series cross-product
// renders at zero before any mutation. The enumeration order must match the
// vec's label order.
func InitLabelCombinations(vec *prometheus.CounterVec, values ...[]string) {
	for _, combo := range crossProduct(values) {
		vec.WithLabelValues(combo...)
	}
}

func crossProduct(values [][]string) [][]string {
	if len(values) == 0 {
		return [][]string{{}}
	}
	rest := crossProduct(values[1:])
	out := make([][]string, 0, len(values[0])*len(rest))
	for _, v := range values[0] {
		for _, tail := range rest {
			combo := make([]string, 0, 1+len(tail))
			combo = append(combo, v)
			combo = append(combo, tail...)
			out = append(out, combo)
		}
	}
	return out
}
