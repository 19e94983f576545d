// Package commerce implements the commerce-analytics instrument set: order,
// payment, product, cart, database, regional, and endpoint activity.
package commerce

import (
	"log/slog"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"analytics-demo/internal/metrics"
)

// Categorical tag enumerations. Every drawn tag value is a member of one of
// these sets, and the full label cross-product of each counter is
// pre-registered at startup.
var (
	OrderTypes        = []string{"standard", "express", "overnight", "international", "subscription"}
	PaymentMethods    = []string{"credit_card", "debit_card", "paypal", "apple_pay", "google_pay", "bank_transfer", "crypto"}
	FulfillmentTypes  = []string{"warehouse", "dropship", "digital", "pickup"}
	Currencies        = []string{"USD", "EUR", "GBP", "CAD", "JPY", "AUD"}
	PaymentStatuses   = []string{"success", "failed", "pending", "cancelled"}
	ProductCategories = []string{"electronics", "clothing", "books", "home", "sports", "automotive", "beauty"}
	Devices           = []string{"desktop", "mobile", "tablet", "api"}
	CartActions       = []string{"add_item", "remove_item", "update_quantity", "apply_coupon", "checkout", "abandon"}

	// Regions and Endpoints are the fixed keys of the pre-registered
	// per-key instrument families.
	Regions   = []string{"us-east-1", "us-west-2", "eu-west-1", "ap-southeast-1", "ca-central-1"}
	Endpoints = []string{"/api/orders", "/api/payments", "/api/products", "/api/cart"}
)

// Metrics holds every commerce instrument. All instruments are created once
// at construction and live for the process lifetime.
type Metrics struct {
	logger *slog.Logger

	orders       *prometheus.CounterVec // order_type, payment_method, fulfillment_type
	payments     *prometheus.CounterVec // payment_method, currency, status
	productViews *prometheus.CounterVec // category, device
	cartActions  *prometheus.CounterVec // action, device

	inventoryLevels *metrics.BoundedGauge
	activeOrders    *metrics.BoundedGauge
	totalRevenue    *metrics.BoundedGauge
	dbConnections   *metrics.BoundedGauge

	orderProcessing   prometheus.Histogram
	paymentProcessing prometheus.Histogram
	inventoryCheck    prometheus.Histogram
	dbQuery           prometheus.Histogram

	orderValue    prometheus.Histogram
	shippingCost  prometheus.Histogram
	productRating prometheus.Histogram

	regions   *metrics.CounterFamily
	endpoints *metrics.TimerFamily
}

// New registers every commerce instrument on the registry, including the
// full label cross-product of the tagged counters and one series per
// enumerated region and endpoint.
func New(reg *metrics.Registry, logger *slog.Logger) *Metrics {
	f := reg.Factory()

	m := &Metrics{logger: logger}

	m.orders = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: "commerce",
		Name:      "orders_total",
		Help:      "Total number of orders",
	}, []string{"order_type", "payment_method", "fulfillment_type"})
	metrics.InitLabelCombinations(m.orders, OrderTypes, PaymentMethods, FulfillmentTypes)

	m.payments = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: "commerce",
		Name:      "payments_total",
		Help:      "Total number of payments",
	}, []string{"payment_method", "currency", "status"})
	metrics.InitLabelCombinations(m.payments, PaymentMethods, Currencies, PaymentStatuses)

	m.productViews = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: "commerce",
		Name:      "product_views_total",
		Help:      "Total number of product views",
	}, []string{"category", "device"})
	metrics.InitLabelCombinations(m.productViews, ProductCategories, Devices)

	m.cartActions = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: "commerce",
		Name:      "cart_actions_total",
		Help:      "Total number of cart actions",
	}, []string{"action", "device"})
	metrics.InitLabelCombinations(m.cartActions, CartActions, Devices)

	m.inventoryLevels = metrics.NewBoundedGauge(f, prometheus.GaugeOpts{
		Namespace: "commerce",
		Name:      "inventory_levels",
		Help:      "Current inventory levels",
	}, 0, 5000, 1000)

	m.activeOrders = metrics.NewBoundedGauge(f, prometheus.GaugeOpts{
		Namespace: "commerce",
		Name:      "orders_active",
		Help:      "Number of currently active orders",
	}, 0, 100, 0)

	m.totalRevenue = metrics.NewBoundedGauge(f, prometheus.GaugeOpts{
		Namespace: "commerce",
		Name:      "revenue_total",
		Help:      "Total revenue in cents",
	}, 0, math.MaxInt64, 0)

	m.dbConnections = metrics.NewBoundedGauge(f, prometheus.GaugeOpts{
		Namespace: "commerce",
		Name:      "database_connections_active",
		Help:      "Number of active database connections",
	}, 1, 50, 10)

	m.orderProcessing = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "commerce",
		Name:      "order_processing_duration_seconds",
		Help:      "Order processing time",
		Buckets:   prometheus.DefBuckets,
	})

	m.paymentProcessing = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "commerce",
		Name:      "payment_processing_duration_seconds",
		Help:      "Payment processing time",
		Buckets:   prometheus.DefBuckets,
	})

	m.inventoryCheck = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "commerce",
		Name:      "inventory_check_duration_seconds",
		Help:      "Inventory check processing time",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 8),
	})

	m.dbQuery = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "commerce",
		Name:      "database_query_duration_seconds",
		Help:      "Database query execution time",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
	})

	m.orderValue = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "commerce",
		Name:      "order_value_dollars",
		Help:      "Distribution of order values",
		Buckets:   prometheus.ExponentialBuckets(10, 2, 7),
	})

	m.shippingCost = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "commerce",
		Name:      "shipping_cost_dollars",
		Help:      "Distribution of shipping costs",
		Buckets:   prometheus.LinearBuckets(2.5, 2.5, 10),
	})

	m.productRating = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "commerce",
		Name:      "product_rating",
		Help:      "Distribution of product ratings",
		Buckets:   prometheus.LinearBuckets(1, 0.5, 9),
	})

	m.regions = metrics.NewCounterFamily(f, prometheus.CounterOpts{
		Namespace: "commerce",
		Name:      "requests_by_region_total",
		Help:      "Commerce requests by region",
	}, "region", Regions)

	m.endpoints = metrics.NewTimerFamily(f, prometheus.HistogramOpts{
		Namespace: "commerce",
		Name:      "endpoint_duration_seconds",
		Help:      "Commerce endpoint processing time",
		Buckets:   prometheus.DefBuckets,
	}, "endpoint", Endpoints)

	return m
}

// SimulateOrderProcessing records one synthetic order: a tagged order count,
// order value and shipping cost observations, revenue accumulation, a
// processing duration sample, and an active-order delta.
func (m *Metrics) SimulateOrderProcessing() {
	m.orders.WithLabelValues(
		metrics.Pick(OrderTypes),
		metrics.Pick(PaymentMethods),
		metrics.Pick(FulfillmentTypes),
	).Inc()

	orderValue := metrics.FloatBetween(10.0, 500.0)
	m.orderValue.Observe(orderValue)
	m.totalRevenue.Add(int64(orderValue * 100)) // stored in cents

	m.shippingCost.Observe(metrics.FloatBetween(0, 25.0))

	processing := metrics.DurationBetween(200*time.Millisecond, 3*time.Second)
	m.orderProcessing.Observe(processing.Seconds())

	active := m.activeOrders.Add(int64(metrics.IntBetween(-2, 5)))

	m.logger.Debug("processed order",
		slog.Float64("value", orderValue),
		slog.Duration("processing", processing),
		slog.Int64("active_orders", active))
}

// SimulatePaymentProcessing records one tagged payment and a processing
// duration sample. The status tag is its own draw; the HTTP layer branches
// on an independent draw.
func (m *Metrics) SimulatePaymentProcessing() {
	m.payments.WithLabelValues(
		metrics.Pick(PaymentMethods),
		metrics.Pick(Currencies),
		metrics.Pick(PaymentStatuses),
	).Inc()

	d := metrics.DurationBetween(300*time.Millisecond, 2500*time.Millisecond)
	m.paymentProcessing.Observe(d.Seconds())

	m.logger.Debug("payment processed", slog.Duration("duration", d))
}

// SimulateProductActivity records a tagged product view, a rating
// observation, an inventory delta, and an inventory-check duration sample.
func (m *Metrics) SimulateProductActivity() {
	m.productViews.WithLabelValues(
		metrics.Pick(ProductCategories),
		metrics.Pick(Devices),
	).Inc()

	m.productRating.Observe(metrics.FloatBetween(1.0, 5.0))

	inventory := m.inventoryLevels.Add(int64(metrics.IntBetween(-10, 5)))

	check := metrics.DurationBetween(25*time.Millisecond, 200*time.Millisecond)
	m.inventoryCheck.Observe(check.Seconds())

	m.logger.Debug("product activity recorded", slog.Int64("inventory", inventory))
}

// SimulateCartActivity records one tagged cart action.
func (m *Metrics) SimulateCartActivity() {
	m.cartActions.WithLabelValues(
		metrics.Pick(CartActions),
		metrics.Pick(Devices),
	).Inc()
}

// SimulateDatabaseActivity records a query duration sample and a connection
// count delta.
func (m *Metrics) SimulateDatabaseActivity() {
	query := metrics.DurationBetween(10*time.Millisecond, 800*time.Millisecond)
	m.dbQuery.Observe(query.Seconds())

	conns := m.dbConnections.Add(int64(metrics.IntBetween(-2, 3)))

	m.logger.Debug("database activity recorded",
		slog.Duration("query", query),
		slog.Int64("connections", conns))
}

// SimulateRegionalActivity increments one uniformly chosen region's
// pre-registered counter.
func (m *Metrics) SimulateRegionalActivity() {
	m.regions.Inc(metrics.Pick(Regions))
}

// SimulateEndpointActivity records a duration sample into one uniformly
// chosen endpoint's pre-registered timer.
func (m *Metrics) SimulateEndpointActivity() {
	m.endpoints.Observe(
		metrics.Pick(Endpoints),
		metrics.DurationBetween(100*time.Millisecond, 1500*time.Millisecond),
	)
}

// RecordAPIRequest records the end-to-end wall time of one inbound request
// into the endpoint's pre-registered timer. Unknown endpoints are dropped.
func (m *Metrics) RecordAPIRequest(endpoint string, d time.Duration) {
	m.endpoints.Observe(endpoint, d)
}

// ActiveOrders exposes the active-orders gauge for tests.
func (m *Metrics) ActiveOrders() *metrics.BoundedGauge { return m.activeOrders }

// InventoryLevels exposes the inventory gauge for tests.
func (m *Metrics) InventoryLevels() *metrics.BoundedGauge { return m.inventoryLevels }

// DBConnections exposes the connection-count gauge for tests.
func (m *Metrics) DBConnections() *metrics.BoundedGauge { return m.dbConnections }
