// Package demo exposes the consolidated base-variant REST surface. The
// routes mirror the four endpoints the app_* timer family pre-registers.
package demo

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"analytics-demo/internal/analytics/demo"
	"analytics-demo/internal/fake"
	"analytics-demo/internal/handler/http/respond"
	"analytics-demo/internal/metrics"
)

// Handler serves the base-variant API endpoints.
type Handler struct {
	metrics *demo.Metrics
	logger  *slog.Logger

	// sleep implements the artificial processing delay; replaced in tests.
	sleep func(time.Duration)
}

// NewHandler creates the demo handler.
func NewHandler(m *demo.Metrics, logger *slog.Logger) *Handler {
	return &Handler{
		metrics: m,
		logger:  logger,
		sleep:   time.Sleep,
	}
}

// Register mounts the demo API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/users", h.getUsers)
	mux.HandleFunc("POST /api/users", h.registerUser)
	mux.HandleFunc("GET /api/orders", h.getOrders)
	mux.HandleFunc("POST /api/orders", h.createOrder)
	mux.HandleFunc("GET /api/products", h.getProducts)
	mux.HandleFunc("POST /api/payments", h.processPayment)
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

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.delay(75*time.Millisecond, 400*time.Millisecond)

	h.metrics.SimulateOrderProcessing()
	h.metrics.SimulateDatabaseActivity()

	resp := map[string]any{
		"orders":    fake.Orders(),
		"total":     metrics.IntBetween(50, 500),
		"timestamp": time.Now().UTC(),
	}

	elapsed := time.Since(start)
	h.metrics.RecordAPIRequest("/api/orders", elapsed)
	h.logger.Info("GET /api/orders processed", slog.Duration("elapsed", elapsed))
	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.delay(200*time.Millisecond, 800*time.Millisecond)

	h.metrics.SimulateOrderProcessing()
	h.metrics.SimulateDatabaseActivity()

	resp := map[string]any{
		"orderId": metrics.Int64Between(10000, 999999),
		"total":   metrics.FloatBetween(10.0, 500.0),
		"status":  "confirmed",
		"created": time.Now().UTC(),
	}

	elapsed := time.Since(start)
	h.metrics.RecordAPIRequest("/api/orders", elapsed)
	h.logger.Info("POST /api/orders processed", slog.Duration("elapsed", elapsed))
	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.delay(30*time.Millisecond, 200*time.Millisecond)

	h.metrics.SimulateDatabaseActivity()
	h.metrics.SimulateRegionalActivity()

	resp := map[string]any{
		"products":  fake.Products(),
		"total":     metrics.IntBetween(200, 2000),
		"timestamp": time.Now().UTC(),
	}

	elapsed := time.Since(start)
	h.metrics.RecordAPIRequest("/api/products", elapsed)
	h.logger.Info("GET /api/products processed", slog.Duration("elapsed", elapsed))
	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) processPayment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.delay(500*time.Millisecond, 2*time.Second)

	h.metrics.SimulateOrderProcessing()
	h.metrics.SimulateDatabaseActivity()

	paymentSuccess := metrics.Chance(0.9)

	status := "success"
	if !paymentSuccess {
		status = "failed"
	}
	resp := map[string]any{
		"paymentId": metrics.Int64Between(100000, 9999999),
		"status":    status,
		"amount":    metrics.FloatBetween(10.0, 1000.0),
		"processed": time.Now().UTC(),
	}

	elapsed := time.Since(start)
	h.metrics.RecordAPIRequest("/api/payments", elapsed)
	h.logger.Info("POST /api/payments processed",
		slog.Duration("elapsed", elapsed),
		slog.String("status", status))

	if paymentSuccess {
		respond.JSON(w, http.StatusOK, resp)
	} else {
		respond.JSON(w, http.StatusPaymentRequired, resp)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	h.metrics.SimulateUserActivity()

	respond.JSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "metrics-demo",
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
	case "orders":
		h.metrics.SimulateOrderProcessing()
		message = "Order processing simulated"
	case "database":
		h.metrics.SimulateDatabaseActivity()
		message = "Database activity simulated"
	case "registrations":
		h.metrics.RecordRegistration()
		message = "User registration simulated"
	case "regions":
		h.metrics.SimulateRegionalActivity()
		message = "Regional activity simulated"
	case "endpoints":
		h.metrics.SimulateEndpointActivity()
		message = "Endpoint activity simulated"
	case "all":
		h.metrics.SimulateUserActivity()
		h.metrics.SimulateOrderProcessing()
		h.metrics.SimulateDatabaseActivity()
		h.metrics.RecordRegistration()
		h.metrics.SimulateRegionalActivity()
		h.metrics.SimulateEndpointActivity()
		message = "All activities simulated"
	default:
		respond.Error(w, http.StatusBadRequest, "unknown simulation type")
		return
	}

	h.logger.Info("simulated activity", slog.String("type", kind))
	respond.JSON(w, http.StatusOK, map[string]any{
		"message":   message,
		"type":      kind,
		"service":   "metrics-demo",
		"timestamp": time.Now().UTC(),
	})
}
