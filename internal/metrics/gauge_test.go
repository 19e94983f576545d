package metrics

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGauge(t *testing.T, min, max, initial int64) (*BoundedGauge, prometheus.Gatherer) {
	t.Helper()
	reg := prometheus.NewRegistry()
	g := NewBoundedGauge(promauto.With(reg), prometheus.GaugeOpts{
		Name: "test_gauge",
		Help: "test gauge",
	}, min, max, initial)
	return g, reg
}

func TestBoundedGaugeClampsRange(t *testing.T) {
	tests := []struct {
		name    string
		initial int64
		delta   int64
		want    int64
	}{
		{name: "within range", initial: 10, delta: 5, want: 15},
		{name: "clamped at max", initial: 95, delta: 20, want: 100},
		{name: "clamped at min", initial: 3, delta: -10, want: 0},
		{name: "exactly max", initial: 50, delta: 50, want: 100},
		{name: "exactly min", initial: 5, delta: -5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGauge(t, 0, 100, tt.initial)
			assert.Equal(t, tt.want, g.Add(tt.delta))
			assert.Equal(t, tt.want, g.Value())
		})
	}
}

func TestBoundedGaugeClampsInitial(t *testing.T) {
	g, _ := newTestGauge(t, 10, 50, 500)
	assert.Equal(t, int64(50), g.Value())

	g, _ = newTestGauge(t, 10, 50, -3)
	assert.Equal(t, int64(10), g.Value())
}

func TestBoundedGaugeSet(t *testing.T) {
	g, _ := newTestGauge(t, 0, 100, 0)

	assert.Equal(t, int64(42), g.Set(42))
	assert.Equal(t, int64(100), g.Set(9999))
	assert.Equal(t, int64(0), g.Set(-1))
}

func TestBoundedGaugeAddFloor(t *testing.T) {
	g, _ := newTestGauge(t, 0, 200, 10)

	// A negative delta cannot take the value below the floor.
	got := g.AddFloor(-100, 25)
	assert.Equal(t, int64(25), got)

	// Floor does not override the upper clamp path when irrelevant.
	got = g.AddFloor(300, 25)
	assert.Equal(t, int64(200), got)
}

func TestBoundedGaugeMirrorsExportedSeries(t *testing.T) {
	g, reg := newTestGauge(t, 0, 100, 7)
	g.Add(3)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, float64(10), families[0].GetMetric()[0].GetGauge().GetValue())
}

func TestBoundedGaugeConcurrentAdds(t *testing.T) {
	g, _ := newTestGauge(t, 0, 1_000_000, 0)

	const workers = 50
	const perWorker = 100

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				g.Add(1)
			}
		}()
	}
	wg.Wait()

	// No update may be lost while the range is wide enough to hold them all.
	assert.Equal(t, int64(workers*perWorker), g.Value())
	assert.Equal(t, float64(workers*perWorker), testutil.ToFloat64(g.gauge))
}

func TestBoundedGaugeConcurrentStaysInRange(t *testing.T) {
	g, _ := newTestGauge(t, 0, 100, 50)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		delta := int64(i%7 - 3)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				v := g.Add(delta)
				if v < 0 || v > 100 {
					t.Errorf("value %d out of range", v)
					return
				}
			}
		}()
	}
	wg.Wait()

	min, max := g.Bounds()
	assert.GreaterOrEqual(t, g.Value(), min)
	assert.LessOrEqual(t, g.Value(), max)
}
