package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"
)

func gatherFamily(t *testing.T, reg prometheus.Gatherer, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric family %q not found", name)
	return nil
}

func TestCounterFamilyPreRegistersEveryKey(t *testing.T) {
	reg := prometheus.NewRegistry()
	keys := []string{"us-east-1", "eu-west-1", "ap-southeast-1"}

	cf := NewCounterFamily(promauto.With(reg), prometheus.CounterOpts{
		Name: "requests_by_region_total",
		Help: "test",
	}, "region", keys)

	mf := gatherFamily(t, reg, "requests_by_region_total")
	require.Len(t, mf.GetMetric(), len(keys), "every key renders before any increment")
	for _, m := range mf.GetMetric() {
		assert.Zero(t, m.GetCounter().GetValue())
	}
	assert.Equal(t, keys, cf.Keys())
}

func TestCounterFamilyInc(t *testing.T) {
	reg := prometheus.NewRegistry()
	cf := NewCounterFamily(promauto.With(reg), prometheus.CounterOpts{
		Name: "requests_by_region_total",
		Help: "test",
	}, "region", []string{"us-east-1", "eu-west-1"})

	cf.Inc("us-east-1")
	cf.Inc("us-east-1")
	cf.Inc("eu-west-1")

	mf := gatherFamily(t, reg, "requests_by_region_total")
	byRegion := map[string]float64{}
	for _, m := range mf.GetMetric() {
		byRegion[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}
	assert.Equal(t, float64(2), byRegion["us-east-1"])
	assert.Equal(t, float64(1), byRegion["eu-west-1"])
}

func TestCounterFamilyUnknownKeyIsDropped(t *testing.T) {
	reg := prometheus.NewRegistry()
	cf := NewCounterFamily(promauto.With(reg), prometheus.CounterOpts{
		Name: "requests_by_region_total",
		Help: "test",
	}, "region", []string{"us-east-1"})

	cf.Inc("mars-north-1")

	// No new series appears and nothing panics.
	mf := gatherFamily(t, reg, "requests_by_region_total")
	require.Len(t, mf.GetMetric(), 1)
	assert.Zero(t, mf.GetMetric()[0].GetCounter().GetValue())
}

func TestTimerFamilyObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	tf := NewTimerFamily(promauto.With(reg), prometheus.HistogramOpts{
		Name:    "endpoint_duration_seconds",
		Help:    "test",
		Buckets: prometheus.DefBuckets,
	}, "endpoint", []string{"/api/orders", "/api/cart"})

	tf.Observe("/api/orders", 150*time.Millisecond)
	tf.Observe("/api/orders", 250*time.Millisecond)
	tf.Observe("/api/unknown", time.Second)

	mf := gatherFamily(t, reg, "endpoint_duration_seconds")
	require.Len(t, mf.GetMetric(), 2, "unknown endpoint creates no series")

	byEndpoint := map[string]uint64{}
	var sum float64
	for _, m := range mf.GetMetric() {
		byEndpoint[m.GetLabel()[0].GetValue()] = m.GetHistogram().GetSampleCount()
		sum += m.GetHistogram().GetSampleSum()
	}
	assert.Equal(t, uint64(2), byEndpoint["/api/orders"])
	assert.Equal(t, uint64(0), byEndpoint["/api/cart"])
	assert.InDelta(t, 0.4, sum, 1e-9)
}

func TestInitLabelCombinations(t *testing.T) {
	reg := prometheus.NewRegistry()
	vec := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: "orders_total",
		Help: "test",
	}, []string{"order_type", "payment_method", "fulfillment_type"})

	a := []string{"standard", "express"}
	b := []string{"credit_card", "paypal", "crypto"}
	c := []string{"warehouse", "digital", "pickup", "dropship"}
	InitLabelCombinations(vec, a, b, c)

	assert.Equal(t, len(a)*len(b)*len(c), testutil.CollectAndCount(vec))
}

func TestCrossProduct(t *testing.T) {
	tests := []struct {
		name   string
		values [][]string
		want   int
	}{
		{name: "empty", values: nil, want: 1},
		{name: "single dimension", values: [][]string{{"a", "b"}}, want: 2},
		{name: "two dimensions", values: [][]string{{"a", "b"}, {"x", "y", "z"}}, want: 6},
		{name: "empty dimension collapses", values: [][]string{{"a"}, {}}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, crossProduct(tt.values), tt.want)
		})
	}
}
