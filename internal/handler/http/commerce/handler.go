// Package commerce exposes the commerce-analytics REST surface. Each
// handler simulates a per-endpoint processing delay, drives the domain
// mutators, records the end-to-end wall time into the endpoint's
// pre-registered timer, and responds with a synthetic payload.
package commerce

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"analytics-demo/internal/analytics/commerce"
	"analytics-demo/internal/fake"
	"analytics-demo/internal/handler/http/respond"
	"analytics-demo/internal/metrics"
)

// Handler serves the commerce API endpoints.
type Handler struct {
	metrics *commerce.Metrics
	logger  *slog.Logger

	// sleep implements the artificial processing delay; replaced in tests.
	sleep func(time.Duration)
}

// NewHandler creates the commerce handler.
func NewHandler(m *commerce.Metrics, logger *slog.Logger) *Handler {
	return &Handler{
		metrics: m,
		logger:  logger,
		sleep:   time.Sleep,
	}
}

// Register mounts the commerce API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/orders", h.getOrders)
	mux.HandleFunc("POST /api/orders", h.createOrder)
	mux.HandleFunc("GET /api/products", h.getProducts)
	mux.HandleFunc("POST /api/payments", h.processPayment)
	mux.HandleFunc("GET /api/cart", h.getCart)
	mux.HandleFunc("POST /api/cart", h.updateCart)
	mux.HandleFunc("GET /api/health-check", h.healthCheck)
	mux.HandleFunc("POST /api/simulate/{type}", h.simulate)
}

func (h *Handler) delay(min, max time.Duration) {
	h.sleep(metrics.DurationBetween(min, max))
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.delay(75*time.Millisecond, 400*time.Millisecond)

	h.metrics.SimulateOrderProcessing()
	h.metrics.SimulateDatabaseActivity()
	h.metrics.SimulateRegionalActivity()

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
	h.metrics.SimulateProductActivity()

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

	h.metrics.SimulateProductActivity()
	h.metrics.SimulateDatabaseActivity()

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

	h.metrics.SimulatePaymentProcessing()
	h.metrics.SimulateOrderProcessing()
	h.metrics.SimulateDatabaseActivity()

	// This draw decides the HTTP status only. The payment counter's status
	// tag is drawn separately inside SimulatePaymentProcessing, so the two
	// can disagree for a single logical payment.
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

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.delay(50*time.Millisecond, 250*time.Millisecond)

	h.metrics.SimulateCartActivity()
	h.metrics.SimulateProductActivity()

	userID := int64(1)
	if v, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64); err == nil {
		userID = v
	}

	resp := map[string]any{
		"userId":     userID,
		"items":      fake.CartItems(),
		"totalValue": metrics.FloatBetween(25.0, 300.0),
		"itemCount":  metrics.IntBetween(1, 8),
		"timestamp":  time.Now().UTC(),
	}

	elapsed := time.Since(start)
	h.metrics.RecordAPIRequest("/api/cart", elapsed)
	h.logger.Info("GET /api/cart processed", slog.Duration("elapsed", elapsed))
	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) updateCart(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.delay(75*time.Millisecond, 300*time.Millisecond)

	h.metrics.SimulateCartActivity()
	h.metrics.SimulateProductActivity()
	h.metrics.SimulateDatabaseActivity()

	resp := map[string]any{
		"cartId":     metrics.Int64Between(10000, 99999),
		"action":     metrics.Pick(commerce.CartActions),
		"totalValue": metrics.FloatBetween(25.0, 300.0),
		"updated":    time.Now().UTC(),
	}

	elapsed := time.Since(start)
	h.metrics.RecordAPIRequest("/api/cart", elapsed)
	h.logger.Info("POST /api/cart processed", slog.Duration("elapsed", elapsed))
	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	h.metrics.SimulateProductActivity()

	respond.JSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "commerce-analytics",
		"timestamp": time.Now().UTC(),
		"uptime":    "running",
	})
}

func (h *Handler) simulate(w http.ResponseWriter, r *http.Request) {
	kind := strings.ToLower(r.PathValue("type"))

	var message string
	switch kind {
	case "orders":
		h.metrics.SimulateOrderProcessing()
		message = "Order processing simulated"
	case "payments":
		h.metrics.SimulatePaymentProcessing()
		message = "Payment processing simulated"
	case "products":
		h.metrics.SimulateProductActivity()
		message = "Product activity simulated"
	case "cart":
		h.metrics.SimulateCartActivity()
		message = "Cart activity simulated"
	case "database":
		h.metrics.SimulateDatabaseActivity()
		message = "Database activity simulated"
	case "regions":
		h.metrics.SimulateRegionalActivity()
		message = "Regional commerce activity simulated"
	case "endpoints":
		h.metrics.SimulateEndpointActivity()
		message = "Commerce endpoint activity simulated"
	case "all":
		h.metrics.SimulateOrderProcessing()
		h.metrics.SimulatePaymentProcessing()
		h.metrics.SimulateProductActivity()
		h.metrics.SimulateCartActivity()
		h.metrics.SimulateDatabaseActivity()
		h.metrics.SimulateRegionalActivity()
		h.metrics.SimulateEndpointActivity()
		message = "All commerce activities simulated"
	default:
		respond.Error(w, http.StatusBadRequest, "unknown simulation type")
		return
	}

	h.logger.Info("simulated commerce activity", slog.String("type", kind))
	respond.JSON(w, http.StatusOK, map[string]any{
		"message":   message,
		"type":      kind,
		"service":   "commerce-analytics",
		"timestamp": time.Now().UTC(),
	})
}
