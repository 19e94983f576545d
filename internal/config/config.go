// Package config loads service configuration from the environment with
// fail-open fallback, plus an optional YAML simulation profile that
// overrides job intervals.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "analytics-demo/internal/pkg/config"
	"analytics-demo/internal/sim"
)

// Defaults carries the per-service values a binary bakes in.
type Defaults struct {
	ServiceName string
	HTTPPort    int
}

// Config is the full runtime configuration for one analytics service.
type Config struct {
	ServiceName string
	Environment string
	Version     string
	Instance    string

	HTTPPort    int
	MetricsPort int

	// SimulationEnabled gates the entire background scheduler. When false
	// the scheduler is never constructed.
	SimulationEnabled bool

	RateLimitEnabled   bool
	RateLimitPerSecond float64
	RateLimitBurst     int

	// SimulationIntervals overrides job intervals by name ("sweep" and
	// "burst" address those schedules). Loaded from the optional YAML file
	// named by SIMULATION_CONFIG_FILE.
	SimulationIntervals map[string]time.Duration

	// SimulationCalls overrides per-firing repetition ranges by job name,
	// from the same YAML file.
	SimulationCalls map[string]sim.CallRange
}

// Load reads configuration from the environment. Invalid values fall back to
// defaults with a warning and a fallback metric; Load never fails.
//
// Environment variables:
//   - APP_ENVIRONMENT, APP_VERSION, APP_INSTANCE: common metric labels
//   - PORT, METRICS_PORT: listener ports
//   - SIMULATION_ENABLED: scheduler toggle (default true)
//   - RATE_LIMIT_ENABLED, RATE_LIMIT_PER_SECOND, RATE_LIMIT_BURST
//   - SIMULATION_CONFIG_FILE: optional YAML interval overrides
func Load(logger *slog.Logger, metrics *pkgconfig.Metrics, defaults Defaults) *Config {
	l := pkgconfig.NewLoader(logger, metrics)

	cfg := &Config{
		ServiceName: l.String("SERVICE_NAME", defaults.ServiceName),
		Environment: l.String("APP_ENVIRONMENT", "development"),
		Version:     l.String("APP_VERSION", "1.0.0"),
		Instance:    l.String("APP_INSTANCE", "local"),

		HTTPPort:    l.Int("PORT", defaults.HTTPPort, pkgconfig.ValidatePort),
		MetricsPort: l.Int("METRICS_PORT", 9090, pkgconfig.ValidatePort),

		SimulationEnabled: l.Bool("SIMULATION_ENABLED", true),

		RateLimitEnabled:   l.Bool("RATE_LIMIT_ENABLED", false),
		RateLimitPerSecond: l.Float("RATE_LIMIT_PER_SECOND", 50, pkgconfig.ValidatePositiveFloat),
		RateLimitBurst:     l.Int("RATE_LIMIT_BURST", 100, pkgconfig.ValidatePositiveInt),
	}

	if file := l.String("SIMULATION_CONFIG_FILE", ""); file != "" {
		intervals, calls, err := loadSimulationFile(file)
		if err != nil {
			logger.Warn("simulation config file ignored",
				slog.String("file", file),
				slog.Any("error", err))
			metrics.RecordFallback("SIMULATION_CONFIG_FILE")
		} else {
			cfg.SimulationIntervals = intervals
			cfg.SimulationCalls = calls
		}
	}

	metrics.RecordLoad()
	return cfg
}

// simulationFile is the YAML shape of the overrides file:
//
//	simulation:
//	  intervals:
//	    orders: 12s
//	    sweep: 1m
//	  calls:
//	    orders: {min: 1, max: 10}
type simulationFile struct {
	Simulation struct {
		Intervals map[string]string `yaml:"intervals"`
		Calls     map[string]struct {
			Min int `yaml:"min"`
			Max int `yaml:"max"`
		} `yaml:"calls"`
	} `yaml:"simulation"`
}

func loadSimulationFile(path string) (map[string]time.Duration, map[string]sim.CallRange, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var file simulationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}

	intervals := make(map[string]time.Duration, len(file.Simulation.Intervals))
	for name, raw := range file.Simulation.Intervals {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("interval %q: %w", name, err)
		}
		if d <= 0 {
			return nil, nil, fmt.Errorf("interval %q: must be positive", name)
		}
		intervals[name] = d
	}

	calls := make(map[string]sim.CallRange, len(file.Simulation.Calls))
	for name, r := range file.Simulation.Calls {
		if r.Min < 0 || r.Max < r.Min {
			return nil, nil, fmt.Errorf("calls %q: invalid range [%d, %d)", name, r.Min, r.Max)
		}
		calls[name] = sim.CallRange{Min: r.Min, Max: r.Max}
	}
	return intervals, calls, nil
}
