package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BoundedGauge is a gauge backed by an atomic integer cell with a declared
// valid range. Every mutation clamps the stored value into [min, max] before
// it is mirrored into the exported series, so concurrent writers can never
// push the gauge out of range and no update is lost.
type BoundedGauge struct {
	gauge    prometheus.Gauge
	min, max int64
	val      atomic.Int64
}

// NewBoundedGauge registers the gauge and seeds it with initial (clamped).
func NewBoundedGauge(f promauto.Factory, opts prometheus.GaugeOpts, min, max, initial int64) *BoundedGauge {
	g := &BoundedGauge{
		gauge: f.NewGauge(opts),
		min:   min,
		max:   max,
	}
	g.Set(initial)
	return g
}

func (g *BoundedGauge) clamp(v int64) int64 {
	if v < g.min {
		return g.min
	}
	if v > g.max {
		return g.max
	}
	return v
}

// Add applies a delta, clamps the result into range, and returns the new
// stored value.
func (g *BoundedGauge) Add(delta int64) int64 {
	for {
		old := g.val.Load()
		next := g.clamp(old + delta)
		if g.val.CompareAndSwap(old, next) {
			g.gauge.Set(float64(next))
			return next
		}
	}
}

// AddFloor applies a delta like Add but never lets the result drop below
// floor. Used for gauges that must track at or above a companion gauge,
// such as online users relative to active users.
func (g *BoundedGauge) AddFloor(delta, floor int64) int64 {
	for {
		old := g.val.Load()
		next := g.clamp(old + delta)
		if next < floor {
			next = floor
		}
		if g.val.CompareAndSwap(old, next) {
			g.gauge.Set(float64(next))
			return next
		}
	}
}

// Set stores v (clamped) and returns the stored value.
func (g *BoundedGauge) Set(v int64) int64 {
	next := g.clamp(v)
	g.val.Store(next)
	g.gauge.Set(float64(next))
	return next
}

// Value returns the current stored value.
func (g *BoundedGauge) Value() int64 { return g.val.Load() }

// Bounds returns the declared [min, max] range.
func (g *BoundedGauge) Bounds() (int64, int64) { return g.min, g.max }
