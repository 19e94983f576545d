package commerce

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"

	"analytics-demo/internal/metrics"
)

func newTestMetrics(t *testing.T) (*Metrics, *metrics.Registry) {
	t.Helper()
	reg := metrics.NewRegistry(metrics.CommonLabels{
		Application: "commerce-analytics",
		Environment: "test",
		Version:     "1.0.0",
		Instance:    "test",
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(reg, logger), reg
}

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

func counterSum(mf *dto.MetricFamily) float64 {
	var sum float64
	for _, m := range mf.GetMetric() {
		sum += m.GetCounter().GetValue()
	}
	return sum
}

func TestNewPreRegistersLabelCrossProducts(t *testing.T) {
	_, reg := newTestMetrics(t)

	tests := []struct {
		metric string
		series int
	}{
		{metric: "commerce_orders_total", series: len(OrderTypes) * len(PaymentMethods) * len(FulfillmentTypes)},
		{metric: "commerce_payments_total", series: len(PaymentMethods) * len(Currencies) * len(PaymentStatuses)},
		{metric: "commerce_product_views_total", series: len(ProductCategories) * len(Devices)},
		{metric: "commerce_cart_actions_total", series: len(CartActions) * len(Devices)},
		{metric: "commerce_requests_by_region_total", series: len(Regions)},
		{metric: "commerce_endpoint_duration_seconds", series: len(Endpoints)},
	}

	for _, tt := range tests {
		t.Run(tt.metric, func(t *testing.T) {
			mf := gatherFamily(t, reg.Gatherer(), tt.metric)
			assert.Len(t, mf.GetMetric(), tt.series)
		})
	}
}

func TestSimulateOrderProcessingConcurrent(t *testing.T) {
	m, reg := newTestMetrics(t)

	const calls = 1000
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.SimulateOrderProcessing()
		}()
	}
	wg.Wait()

	orders := gatherFamily(t, reg.Gatherer(), "commerce_orders_total")
	assert.Equal(t, float64(calls), counterSum(orders), "no order increment lost")

	values := gatherFamily(t, reg.Gatherer(), "commerce_order_value_dollars")
	assert.Equal(t, uint64(calls), values.GetMetric()[0].GetHistogram().GetSampleCount())

	min, max := m.ActiveOrders().Bounds()
	assert.GreaterOrEqual(t, m.ActiveOrders().Value(), min)
	assert.LessOrEqual(t, m.ActiveOrders().Value(), max)
}

func TestSimulatePaymentProcessingTagMembership(t *testing.T) {
	m, reg := newTestMetrics(t)

	for i := 0; i < 200; i++ {
		m.SimulatePaymentProcessing()
	}

	mf := gatherFamily(t, reg.Gatherer(), "commerce_payments_total")
	assert.Equal(t, float64(200), counterSum(mf))

	for _, metric := range mf.GetMetric() {
		for _, lp := range metric.GetLabel() {
			switch lp.GetName() {
			case "payment_method":
				assert.Contains(t, PaymentMethods, lp.GetValue())
			case "currency":
				assert.Contains(t, Currencies, lp.GetValue())
			case "status":
				assert.Contains(t, PaymentStatuses, lp.GetValue())
			}
		}
	}
}

func TestSimulateProductActivityKeepsInventoryInRange(t *testing.T) {
	m, _ := newTestMetrics(t)

	min, max := m.InventoryLevels().Bounds()
	for i := 0; i < 500; i++ {
		m.SimulateProductActivity()
		v := m.InventoryLevels().Value()
		require.GreaterOrEqual(t, v, min)
		require.LessOrEqual(t, v, max)
	}
}

func TestSimulateDatabaseActivityKeepsConnectionsInRange(t *testing.T) {
	m, _ := newTestMetrics(t)

	min, max := m.DBConnections().Bounds()
	assert.Equal(t, int64(1), min)
	assert.Equal(t, int64(50), max)

	for i := 0; i < 500; i++ {
		m.SimulateDatabaseActivity()
		v := m.DBConnections().Value()
		require.GreaterOrEqual(t, v, min)
		require.LessOrEqual(t, v, max)
	}
}

func TestRecordAPIRequestKnownAndUnknownEndpoints(t *testing.T) {
	m, reg := newTestMetrics(t)

	m.RecordAPIRequest("/api/orders", 120*time.Millisecond)
	m.RecordAPIRequest("/api/nope", time.Second)

	mf := gatherFamily(t, reg.Gatherer(), "commerce_endpoint_duration_seconds")
	require.Len(t, mf.GetMetric(), len(Endpoints), "unknown endpoint creates no series")

	var total uint64
	for _, metric := range mf.GetMetric() {
		total += metric.GetHistogram().GetSampleCount()
	}
	assert.Equal(t, uint64(1), total)
}

func TestSimulationProfileCoversEveryActivity(t *testing.T) {
	m, _ := newTestMetrics(t)
	p := m.SimulationProfile()

	assert.Equal(t, "commerce", p.Domain)
	assert.Len(t, p.Jobs, 7)
	assert.Len(t, p.Sweep, 7)
	assert.Equal(t, time.Minute, p.SweepInterval)
	assert.NotEmpty(t, p.Burst)

	var weight float64
	for _, a := range p.Burst {
		weight += a.Weight
	}
	assert.InDelta(t, 1.0, weight, 1e-9)
}
