// Package demo implements the consolidated base-variant instrument set: a
// generic mix of request, error, order, registration, database, regional,
// and endpoint activity under the app_* prefix.
package demo

import (
	"log/slog"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"analytics-demo/internal/metrics"
)

// Categorical tag enumerations. The base variant deliberately uses smaller
// sets than the dedicated user/commerce services.
var (
	ErrorTypes          = []string{"validation", "authentication", "authorization", "database", "network", "timeout"}
	ErrorCodes          = []string{"400", "401", "403", "404", "500", "502", "503"}
	OrderTypes          = []string{"standard", "express", "overnight", "international"}
	PaymentMethods      = []string{"credit_card", "debit_card", "paypal", "apple_pay", "google_pay", "bank_transfer"}
	RegistrationSources = []string{"web", "mobile_app", "social_login", "referral"}
	UserTypes           = []string{"free", "premium", "enterprise"}

	Regions   = []string{"us-east-1", "us-west-2", "eu-west-1", "ap-southeast-1"}
	Endpoints = []string{"/api/users", "/api/orders", "/api/products", "/api/payments"}
)

// Metrics holds the base-variant instruments.
type Metrics struct {
	logger *slog.Logger

	requests      prometheus.Counter
	errors        *prometheus.CounterVec // error_type, status_code
	orders        *prometheus.CounterVec // order_type, payment_method
	registrations *prometheus.CounterVec // source, user_type

	activeUsers   *metrics.BoundedGauge
	queueSize     *metrics.BoundedGauge
	memoryUsage   *metrics.BoundedGauge
	dbConnections *metrics.BoundedGauge

	requestTimer prometheus.Histogram
	dbQuery      prometheus.Histogram
	payment      prometheus.Histogram

	orderValue  prometheus.Histogram
	messageSize prometheus.Histogram

	regions   *metrics.CounterFamily
	endpoints *metrics.TimerFamily
}

// New registers every base-variant instrument on the registry.
func New(reg *metrics.Registry, logger *slog.Logger) *Metrics {
	f := reg.Factory()

	m := &Metrics{logger: logger}

	m.requests = f.NewCounter(prometheus.CounterOpts{
		Namespace: "app",
		Name:      "requests_total",
		Help:      "Total number of requests",
	})

	m.errors = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: "app",
		Name:      "errors_total",
		Help:      "Total number of errors",
	}, []string{"error_type", "status_code"})
	metrics.InitLabelCombinations(m.errors, ErrorTypes, ErrorCodes)

	m.orders = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: "app",
		Name:      "orders_total",
		Help:      "Total number of orders",
	}, []string{"order_type", "payment_method"})
	metrics.InitLabelCombinations(m.orders, OrderTypes, PaymentMethods)

	m.registrations = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: "app",
		Name:      "users_registrations_total",
		Help:      "Total number of user registrations",
	}, []string{"source", "user_type"})
	metrics.InitLabelCombinations(m.registrations, RegistrationSources, UserTypes)

	m.activeUsers = metrics.NewBoundedGauge(f, prometheus.GaugeOpts{
		Namespace: "app",
		Name:      "users_active",
		Help:      "Number of currently active users",
	}, 0, 200, 0)

	m.queueSize = metrics.NewBoundedGauge(f, prometheus.GaugeOpts{
		Namespace: "app",
		Name:      "queue_size",
		Help:      "Current queue size",
	}, 0, math.MaxInt64, 0)

	m.memoryUsage = metrics.NewBoundedGauge(f, prometheus.GaugeOpts{
		Namespace: "app",
		Name:      "memory_usage_bytes",
		Help:      "Current memory usage in bytes",
	}, 0, math.MaxInt64, 0)

	m.dbConnections = metrics.NewBoundedGauge(f, prometheus.GaugeOpts{
		Namespace: "app",
		Name:      "database_connections_active",
		Help:      "Number of active database connections",
	}, 0, math.MaxInt64, 10)

	m.requestTimer = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "app",
		Name:      "request_duration_seconds",
		Help:      "Request processing time",
		Buckets:   prometheus.DefBuckets,
	})

	m.dbQuery = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "app",
		Name:      "database_query_duration_seconds",
		Help:      "Database query execution time",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 8),
	})

	m.payment = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "app",
		Name:      "payment_processing_duration_seconds",
		Help:      "Payment processing time",
		Buckets:   prometheus.DefBuckets,
	})

	m.orderValue = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "app",
		Name:      "order_value_dollars",
		Help:      "Distribution of order values",
		Buckets:   prometheus.ExponentialBuckets(10, 2, 7),
	})

	m.messageSize = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "app",
		Name:      "message_size_bytes",
		Help:      "Distribution of message sizes",
		Buckets:   prometheus.ExponentialBuckets(100, 2, 8),
	})

	m.regions = metrics.NewCounterFamily(f, prometheus.CounterOpts{
		Namespace: "app",
		Name:      "requests_by_region_total",
		Help:      "Requests by region",
	}, "region", Regions)

	m.endpoints = metrics.NewTimerFamily(f, prometheus.HistogramOpts{
		Namespace: "app",
		Name:      "endpoint_duration_seconds",
		Help:      "Endpoint processing time",
		Buckets:   prometheus.DefBuckets,
	}, "endpoint", Endpoints)

	return m
}

// SimulateUserActivity counts one request, flips a 5% error coin, and
// refreshes the active-user, queue, memory, and connection gauges.
func (m *Metrics) SimulateUserActivity() {
	m.requests.Inc()

	if metrics.Chance(0.05) {
		m.errors.WithLabelValues(metrics.Pick(ErrorTypes), metrics.Pick(ErrorCodes)).Inc()
	}

	active := m.activeUsers.Add(int64(metrics.IntBetween(-5, 6)))
	m.queueSize.Set(int64(metrics.IntBetween(0, 50)))
	m.memoryUsage.Set(metrics.Int64Between(100, 1000) * 1024 * 1024)
	m.dbConnections.Set(int64(metrics.IntBetween(5, 20)))

	m.logger.Debug("user activity recorded", slog.Int64("active_users", active))
}

// SimulateOrderProcessing records one tagged order, an order value
// observation, and a payment duration sample.
func (m *Metrics) SimulateOrderProcessing() {
	m.orders.WithLabelValues(metrics.Pick(OrderTypes), metrics.Pick(PaymentMethods)).Inc()

	orderValue := metrics.FloatBetween(10.0, 500.0)
	m.orderValue.Observe(orderValue)

	payment := metrics.DurationBetween(100*time.Millisecond, 2*time.Second)
	m.payment.Observe(payment.Seconds())

	m.logger.Debug("processed order",
		slog.Float64("value", orderValue),
		slog.Duration("payment", payment))
}

// SimulateDatabaseActivity records a query duration and a message size
// observation.
func (m *Metrics) SimulateDatabaseActivity() {
	query := metrics.DurationBetween(5*time.Millisecond, 500*time.Millisecond)
	m.dbQuery.Observe(query.Seconds())

	m.messageSize.Observe(float64(metrics.IntBetween(100, 10000)))

	m.logger.Debug("database activity recorded", slog.Duration("query", query))
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
		metrics.DurationBetween(50*time.Millisecond, 1*time.Second),
	)
}

// RecordRegistration increments the registration counter with independently
// drawn source and user type.
func (m *Metrics) RecordRegistration() {
	m.registrations.WithLabelValues(metrics.Pick(RegistrationSources), metrics.Pick(UserTypes)).Inc()
}

// RecordAPIRequest records one inbound request's wall time into both the
// aggregate request timer and the endpoint's pre-registered timer.
func (m *Metrics) RecordAPIRequest(endpoint string, d time.Duration) {
	m.requestTimer.Observe(d.Seconds())
	m.endpoints.Observe(endpoint, d)
}

// ActiveUsers exposes the active-users gauge for tests.
func (m *Metrics) ActiveUsers() *metrics.BoundedGauge { return m.activeUsers }
