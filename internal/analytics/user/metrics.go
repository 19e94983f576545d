// Package user implements the user-analytics instrument set: registration,
// login, session, engagement, regional, and endpoint activity.
package user

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"analytics-demo/internal/metrics"
)

// Categorical tag enumerations. The full label cross-product of each tagged
// counter is pre-registered at startup.
var (
	RegistrationSources = []string{"web", "mobile_app", "social_login", "referral", "api", "admin"}
	UserTypes           = []string{"free", "premium", "enterprise", "trial"}
	AuthMethods         = []string{"password", "oauth", "sso", "2fa", "biometric"}
	Devices             = []string{"desktop", "mobile", "tablet", "api"}

	Regions   = []string{"us-east-1", "us-west-2", "eu-west-1", "ap-southeast-1", "ap-northeast-1"}
	Endpoints = []string{"/api/users", "/api/users/profile", "/api/users/auth", "/api/users/sessions"}

	loginOutcomes = []string{"true", "false"}
)

// Metrics holds every user-analytics instrument, created once at
// construction for the process lifetime.
type Metrics struct {
	logger *slog.Logger

	registrations *prometheus.CounterVec // source, user_type, device
	logins        *prometheus.CounterVec // auth_method, device, success
	sessions      prometheus.Counter
	engagement    prometheus.Counter

	activeUsers          *metrics.BoundedGauge
	onlineUsers          *metrics.BoundedGauge
	sessionDurationTotal *metrics.BoundedGauge
	cacheSize            *metrics.BoundedGauge

	requestTimer     prometheus.Histogram
	authTimer        prometheus.Histogram
	profileLoadTimer prometheus.Histogram

	sessionDuration prometheus.Histogram
	activityScore   prometheus.Histogram

	regions   *metrics.CounterFamily
	endpoints *metrics.TimerFamily
}

// New registers every user instrument on the registry.
func New(reg *metrics.Registry, logger *slog.Logger) *Metrics {
	f := reg.Factory()

	m := &Metrics{logger: logger}

	m.registrations = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: "user",
		Name:      "registrations_total",
		Help:      "Total number of user registrations",
	}, []string{"source", "user_type", "device"})
	metrics.InitLabelCombinations(m.registrations, RegistrationSources, UserTypes, Devices)

	m.logins = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: "user",
		Name:      "logins_total",
		Help:      "Total number of user logins",
	}, []string{"auth_method", "device", "success"})
	metrics.InitLabelCombinations(m.logins, AuthMethods, Devices, loginOutcomes)

	m.sessions = f.NewCounter(prometheus.CounterOpts{
		Namespace: "user",
		Name:      "sessions_total",
		Help:      "Total number of user sessions",
	})

	m.engagement = f.NewCounter(prometheus.CounterOpts{
		Namespace: "user",
		Name:      "engagement_total",
		Help:      "Total user engagement events",
	})

	m.activeUsers = metrics.NewBoundedGauge(f, prometheus.GaugeOpts{
		Namespace: "user",
		Name:      "active_count",
		Help:      "Number of currently active users",
	}, 0, 150, 0)

	m.onlineUsers = metrics.NewBoundedGauge(f, prometheus.GaugeOpts{
		Namespace: "user",
		Name:      "online_count",
		Help:      "Number of currently online users",
	}, 0, 200, 0)

	m.sessionDurationTotal = metrics.NewBoundedGauge(f, prometheus.GaugeOpts{
		Namespace: "user",
		Name:      "session_duration_total_seconds",
		Help:      "Total session duration in seconds",
	}, 0, math.MaxInt64, 0)

	m.cacheSize = metrics.NewBoundedGauge(f, prometheus.GaugeOpts{
		Namespace: "user",
		Name:      "cache_size",
		Help:      "Number of users in cache",
	}, 0, math.MaxInt64, 0)

	m.requestTimer = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "user",
		Name:      "request_duration_seconds",
		Help:      "User request processing time",
		Buckets:   prometheus.DefBuckets,
	})

	m.authTimer = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "user",
		Name:      "auth_duration_seconds",
		Help:      "User authentication processing time",
		Buckets:   prometheus.DefBuckets,
	})

	m.profileLoadTimer = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "user",
		Name:      "profile_load_duration_seconds",
		Help:      "User profile loading time",
		Buckets:   prometheus.DefBuckets,
	})

	m.sessionDuration = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "user",
		Name:      "session_duration_seconds",
		Help:      "Distribution of user session durations",
		Buckets:   prometheus.ExponentialBuckets(60, 2, 7),
	})

	m.activityScore = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: "user",
		Name:      "activity_score",
		Help:      "Distribution of user activity scores",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	})

	m.regions = metrics.NewCounterFamily(f, prometheus.CounterOpts{
		Namespace: "user",
		Name:      "requests_by_region_total",
		Help:      "User requests by region",
	}, "region", Regions)

	m.endpoints = metrics.NewTimerFamily(f, prometheus.HistogramOpts{
		Namespace: "user",
		Name:      "endpoint_duration_seconds",
		Help:      "User endpoint processing time",
		Buckets:   prometheus.DefBuckets,
	}, "endpoint", Endpoints)

	return m
}

// SimulateUserActivity applies deltas to the active/online gauges, refreshes
// the cache-size gauge, and records one engagement event plus an activity
// score observation. Online users never drop below active users.
func (m *Metrics) SimulateUserActivity() {
	active := m.activeUsers.Add(int64(metrics.IntBetween(-3, 8)))
	online := m.onlineUsers.AddFloor(int64(metrics.IntBetween(-2, 10)), active)

	m.cacheSize.Set(int64(metrics.IntBetween(50, 500)))

	m.engagement.Inc()
	m.activityScore.Observe(metrics.FloatBetween(1.0, 10.0))

	m.logger.Debug("user activity recorded",
		slog.Int64("active", active),
		slog.Int64("online", online))
}

// RecordRegistration increments the registration counter with one
// independently drawn value per categorical dimension.
func (m *Metrics) RecordRegistration() {
	m.registrations.WithLabelValues(
		metrics.Pick(RegistrationSources),
		metrics.Pick(UserTypes),
		metrics.Pick(Devices),
	).Inc()
}

// RecordLogin increments the login counter (success is a coin flip tag, not
// an outcome the caller controls) and records an auth duration sample.
func (m *Metrics) RecordLogin() {
	m.logins.WithLabelValues(
		metrics.Pick(AuthMethods),
		metrics.Pick(Devices),
		strconv.FormatBool(metrics.Chance(0.5)),
	).Inc()

	d := metrics.DurationBetween(100*time.Millisecond, 1500*time.Millisecond)
	m.authTimer.Observe(d.Seconds())
}

// RecordSession counts one session and records its duration, both as a
// distribution sample and into the cumulative duration gauge.
func (m *Metrics) RecordSession() {
	m.sessions.Inc()

	seconds := metrics.Int64Between(60, 3600)
	m.sessionDuration.Observe(float64(seconds))
	m.sessionDurationTotal.Add(seconds)
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
		metrics.DurationBetween(25*time.Millisecond, 800*time.Millisecond),
	)
}

// RecordAPIRequest records one inbound request's wall time into both the
// aggregate request timer and the endpoint's pre-registered timer.
func (m *Metrics) RecordAPIRequest(endpoint string, d time.Duration) {
	m.requestTimer.Observe(d.Seconds())
	m.endpoints.Observe(endpoint, d)
}

// ActiveUsers exposes the active-users gauge for tests.
func (m *Metrics) ActiveUsers() *metrics.BoundedGauge { return m.activeUsers }

// OnlineUsers exposes the online-users gauge for tests.
func (m *Metrics) OnlineUsers() *metrics.BoundedGauge { return m.onlineUsers }
