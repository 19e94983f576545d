// Command metrics-demo serves the consolidated demo service: the generic
// app_* instrument set behind one REST API, with the same background
// simulation machinery as the dedicated analytics services.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"analytics-demo/internal/analytics/demo"
	"analytics-demo/internal/config"
	demohttp "analytics-demo/internal/handler/http/demo"
	"analytics-demo/internal/handler/http/middleware"
	"analytics-demo/internal/handler/http/requestid"
	"analytics-demo/internal/metrics"
	"analytics-demo/internal/observability/logging"
	"analytics-demo/internal/observability/tracing"
	pkgconfig "analytics-demo/internal/pkg/config"
	"analytics-demo/internal/server"
	"analytics-demo/internal/sim"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg := config.Load(logger, nil, config.Defaults{
		ServiceName: "metrics-demo",
		HTTPPort:    8080,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := tracing.InitProvider()
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	reg := metrics.NewRegistry(metrics.CommonLabels{
		Application: cfg.ServiceName,
		Environment: cfg.Environment,
		Version:     cfg.Version,
		Instance:    cfg.Instance,
	})
	pkgconfig.NewMetrics(reg.Registerer()).RecordLoad()

	m := demo.New(reg, logger)

	if cfg.SimulationEnabled {
		profile := m.SimulationProfile()
		profile.ApplyIntervalOverrides(cfg.SimulationIntervals)
		profile.ApplyCallOverrides(cfg.SimulationCalls)

		sched, err := sim.New(logger, profile)
		if err != nil {
			logger.Error("scheduler setup failed", slog.Any("error", err))
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()
	} else {
		logger.Info("background simulation disabled")
	}

	apiMux := http.NewServeMux()
	demohttp.NewHandler(m, logger).Register(apiMux)

	var api http.Handler = apiMux
	if cfg.RateLimitEnabled {
		api = middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst, logger).Middleware(api)
	}
	api = tracing.Middleware(api)
	api = requestid.Middleware(api)

	err := server.Run(ctx, server.Config{
		ServiceName: cfg.ServiceName,
		APIPort:     cfg.HTTPPort,
		MetricsPort: cfg.MetricsPort,
	}, api, server.NewMetricsMux(reg, cfg.ServiceName), logger)
	if err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
