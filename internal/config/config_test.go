package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"analytics-demo/internal/sim"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load(testLogger(), nil, Defaults{ServiceName: "commerce-analytics", HTTPPort: 8082})

	assert.Equal(t, "commerce-analytics", cfg.ServiceName)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "local", cfg.Instance)
	assert.Equal(t, 8082, cfg.HTTPPort)
	assert.Equal(t, 9090, cfg.MetricsPort)
	assert.True(t, cfg.SimulationEnabled)
	assert.False(t, cfg.RateLimitEnabled)
	assert.Nil(t, cfg.SimulationIntervals)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVICE_NAME", "renamed")
	t.Setenv("APP_ENVIRONMENT", "staging")
	t.Setenv("PORT", "9000")
	t.Setenv("SIMULATION_ENABLED", "false")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_PER_SECOND", "25.5")
	t.Setenv("RATE_LIMIT_BURST", "10")

	cfg := Load(testLogger(), nil, Defaults{ServiceName: "commerce-analytics", HTTPPort: 8082})

	assert.Equal(t, "renamed", cfg.ServiceName)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.False(t, cfg.SimulationEnabled)
	assert.True(t, cfg.RateLimitEnabled)
	assert.Equal(t, 25.5, cfg.RateLimitPerSecond)
	assert.Equal(t, 10, cfg.RateLimitBurst)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("METRICS_PORT", "80") // below the privileged threshold
	t.Setenv("RATE_LIMIT_PER_SECOND", "-3")

	cfg := Load(testLogger(), nil, Defaults{ServiceName: "svc", HTTPPort: 8080})

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 9090, cfg.MetricsPort)
	assert.Equal(t, float64(50), cfg.RateLimitPerSecond)
}

func TestLoadSimulationIntervalsFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simulation.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
simulation:
  intervals:
    orders: 3s
    sweep: 45s
    burst: 90s
  calls:
    orders: {min: 2, max: 12}
`), 0o600))
	t.Setenv("SIMULATION_CONFIG_FILE", path)

	cfg := Load(testLogger(), nil, Defaults{ServiceName: "svc", HTTPPort: 8080})

	require.NotNil(t, cfg.SimulationIntervals)
	assert.Equal(t, 3*time.Second, cfg.SimulationIntervals["orders"])
	assert.Equal(t, 45*time.Second, cfg.SimulationIntervals["sweep"])
	assert.Equal(t, 90*time.Second, cfg.SimulationIntervals["burst"])
	assert.Equal(t, sim.CallRange{Min: 2, Max: 12}, cfg.SimulationCalls["orders"])
}

func TestLoadSimulationFileErrorsIgnored(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: ":\n  - ["},
		{name: "bad duration", content: "simulation:\n  intervals:\n    orders: soon"},
		{name: "negative duration", content: "simulation:\n  intervals:\n    orders: -5s"},
		{name: "inverted call range", content: "simulation:\n  calls:\n    orders: {min: 9, max: 2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "simulation.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			t.Setenv("SIMULATION_CONFIG_FILE", path)

			cfg := Load(testLogger(), nil, Defaults{ServiceName: "svc", HTTPPort: 8080})
			assert.Nil(t, cfg.SimulationIntervals, "invalid file falls back to no overrides")
		})
	}
}

func TestLoadSimulationFileMissingIgnored(t *testing.T) {
	t.Setenv("SIMULATION_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg := Load(testLogger(), nil, Defaults{ServiceName: "svc", HTTPPort: 8080})
	assert.Nil(t, cfg.SimulationIntervals)
}
