// Package server runs the paired HTTP listeners of one analytics service:
// the API server and the metrics/exposition server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"analytics-demo/internal/handler/http/respond"
	"analytics-demo/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

// Config carries the listener setup for Run.
type Config struct {
	ServiceName string
	APIPort     int
	MetricsPort int
}

// NewMetricsMux builds the exposition mux: /metrics, its /actuator/prometheus
// alias, and a liveness probe.
func NewMetricsMux(reg *metrics.Registry, serviceName string) *http.ServeMux {
	mux := http.NewServeMux()
	handler := reg.Handler()
	mux.Handle("GET /metrics", handler)
	mux.Handle("GET /actuator/prometheus", handler)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]any{
			"status":  "up",
			"service": serviceName,
		})
	})
	return mux
}

// Run serves the API and metrics listeners until ctx is cancelled, then shuts
// both down gracefully. It returns the first listener error, if any.
func Run(ctx context.Context, cfg Config, api http.Handler, metricsMux http.Handler, logger *slog.Logger) error {
	apiSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.APIPort),
		Handler:           api,
		ReadHeaderTimeout: 10 * time.Second,
	}
	metricsSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("api server listening",
			slog.String("service", cfg.ServiceName),
			slog.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("metrics server listening", slog.String("addr", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("shutting down servers")
		var errs []error
		if err := apiSrv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("api shutdown: %w", err))
		}
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("metrics shutdown: %w", err))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
