// Package config provides reusable environment-variable loaders with
// validation and fail-open fallback, plus Prometheus metrics that surface
// fallback activity so misconfiguration is visible on dashboards instead of
// crashing the process.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Loader reads typed values from the environment. Invalid values never fail
// a load: the default is applied, a warning is logged, and a fallback metric
// is recorded.
type Loader struct {
	logger  *slog.Logger
	metrics *Metrics
}

// NewLoader creates a Loader. metrics may be nil.
func NewLoader(logger *slog.Logger, metrics *Metrics) *Loader {
	return &Loader{logger: logger, metrics: metrics}
}

// String loads a string value, returning def when the variable is unset.
func (l *Loader) String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Int loads an integer value. Parse or validation failures fall back to def.
func (l *Loader) Int(key string, def int, validate func(int) error) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err == nil && validate != nil {
		err = validate(v)
	}
	if err != nil {
		l.fallback(key, raw, err)
		return def
	}
	return v
}

// Float loads a float value. Parse or validation failures fall back to def.
func (l *Loader) Float(key string, def float64, validate func(float64) error) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err == nil && validate != nil {
		err = validate(v)
	}
	if err != nil {
		l.fallback(key, raw, err)
		return def
	}
	return v
}

// Bool loads a boolean value ("true"/"false"/"1"/"0"). Parse failures fall
// back to def.
func (l *Loader) Bool(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		l.fallback(key, raw, err)
		return def
	}
	return v
}

// Duration loads a time.Duration value ("30s", "5m"). Parse or validation
// failures fall back to def.
func (l *Loader) Duration(key string, def time.Duration, validate func(time.Duration) error) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err == nil && validate != nil {
		err = validate(v)
	}
	if err != nil {
		l.fallback(key, raw, err)
		return def
	}
	return v
}

func (l *Loader) fallback(key, raw string, err error) {
	l.logger.Warn("invalid configuration value, using default",
		slog.String("key", key),
		slog.String("value", raw),
		slog.Any("error", err))
	l.metrics.RecordFallback(key)
}
