// Package user exposes the user-analytics REST surface. Each handler
// simulates a per-endpoint processing delay, drives the domain mutators,
// records the end-to-end wall time into the endpoint's pre-registered
// timer, and responds with a synthetic payload.
package user

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"analytics-demo/internal/analytics/user"
	"analytics-demo/internal/fake"
	"analytics-demo/internal/handler/http/respond"
	"analytics-demo/internal/metrics"
)

// Handler serves the user API endpoints.
type Handler struct {
	metrics *user.Metrics
	logger  *slog.Logger

	// sleep implements the artificial processing delay; replaced in tests.
	sleep func(time.Duration)
}

// NewHandler creates the user handler.
func NewHandler(m *user.Metrics, logger *slog.Logger) *Handler {
	return &Handler{
		metrics: m,
		logger:  logger,
		sleep:   time.Sleep,
	}
}

// Register mounts the user API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/users", h.getUsers)
	mux.HandleFunc("POST /api/users", h.registerUser)
	mux.HandleFunc("GET /api/users/profile", h.getProfile)
	mux.HandleFunc("POST /api/users/auth", h.authenticate)
	mux.HandleFunc("POST /api/users/sessions", h.startSession)
	mux.HandleFunc("GET /api/health-check", h.healthCheck)
	mux.HandleFunc("POST /api/simulate/{type}", h.simulate)
}

func (h *Handler) delay(min, max time.Duration) {
	h.sleep(metrics.DurationBetween(min, max))
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.delay(50*time.Millisecond, 300*time.Millisecond)

	h.metrics.SimulateUserActivity()
	h.metrics.SimulateRegionalActivity()

	resp := map[string]any{
		"users":     fake.Users(),
		"total":     metrics.IntBetween(100, 1000),
		"timestamp": time.Now().UTC(),
	}

	elapsed := time.Since(start)
	h.metrics.RecordAPIRequest("/api/users", elapsed)
	h.logger.Info("GET /api/users processed", slog.Duration("elapsed", elapsed))
	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.delay(100*time.Millisecond, 500*time.Millisecond)

	h.metrics.RecordRegistration()
	h.metrics.SimulateUserActivity()

	resp := map[string]any{
		"userId":  metrics.Int64Between(10000, 999999),
		"status":  "registered",
		"created": time.Now().UTC(),
	}

	elapsed := time.Since(start)
	h.metrics.RecordAPIRequest("/api/users", elapsed)
	h.logger.Info("POST /api/users processed", slog.Duration("elapsed", elapsed))
	respond.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.delay(75*time.Millisecond, 400*time.Millisecond)

	h.metrics.SimulateUserActivity()

	users := fake.Users()
	resp := map[string]any{
		"profile":   users[0],
		"timestamp": time.Now().UTC(),
	}

	elapsed := time.Since(start)
	h.metrics.RecordAPIRequest("/api/users/profile", elapsed)
	h.logger.Info("GET /api/users/profile processed", slog.Duration("elapsed", elapsed))
	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.delay(200*time.Millisecond, 800*time.Millisecond)

	h.metrics.RecordLogin()
	h.metrics.SimulateUserActivity()

	// This draw decides the HTTP status only. The login counter's success
	// tag is drawn separately inside RecordLogin, so the two can disagree
	// for a single logical login attempt.
	authenticated := metrics.Chance(0.85)

	elapsed := time.Since(start)
	h.metrics.RecordAPIRequest("/api/users/auth", elapsed)
	h.logger.Info("POST /api/users/auth processed",
		slog.Duration("elapsed", elapsed),
		slog.Bool("authenticated", authenticated))

	if !authenticated {
		respond.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"token":     "demo-token-" + time.Now().UTC().Format("20060102150405"),
		"expiresIn": 3600,
		"userId":    metrics.Int64Between(10000, 999999),
	})
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.delay(50*time.Millisecond, 200*time.Millisecond)

	h.metrics.RecordSession()
	h.metrics.SimulateUserActivity()

	resp := map[string]any{
		"sessionId":      metrics.Int64Between(100000, 9999999),
		"activeSessions": metrics.IntBetween(10, 150),
		"started":        time.Now().UTC(),
	}

	elapsed := time.Since(start)
	h.metrics.RecordAPIRequest("/api/users/sessions", elapsed)
	h.logger.Info("POST /api/users/sessions processed", slog.Duration("elapsed", elapsed))
	respond.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	h.metrics.SimulateUserActivity()

	respond.JSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "user-analytics",
		"timestamp": time.Now().UTC(),
		"uptime":    "running",
	})
}

func (h *Handler) simulate(w http.ResponseWriter, r *http.Request) {
	kind := strings.ToLower(r.PathValue("type"))

	var message string
	switch kind {
	case "activity":
		h.metrics.SimulateUserActivity()
		message = "User activity simulated"
	case "registrations":
		h.metrics.RecordRegistration()
		message = "User registration simulated"
	case "logins":
		h.metrics.RecordLogin()
		message = "User login simulated"
	case "sessions":
		h.metrics.RecordSession()
		message = "User session simulated"
	case "regions":
		h.metrics.SimulateRegionalActivity()
		message = "Regional user activity simulated"
	case "endpoints":
		h.metrics.SimulateEndpointActivity()
		message = "User endpoint activity simulated"
	case "all":
		h.metrics.SimulateUserActivity()
		h.metrics.RecordRegistration()
		h.metrics.RecordLogin()
		h.metrics.RecordSession()
		h.metrics.SimulateRegionalActivity()
		h.metrics.SimulateEndpointActivity()
		message = "All user activities simulated"
	default:
		respond.Error(w, http.StatusBadRequest, "unknown simulation type")
		return
	}

	h.logger.Info("simulated user activity", slog.String("type", kind))
	respond.JSON(w, http.StatusOK, map[string]any{
		"message":   message,
		"type":      kind,
		"service":   "user-analytics",
		"timestamp": time.Now().UTC(),
	})
}
