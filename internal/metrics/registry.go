// Package metrics provides the instrument primitives shared by the analytics
// engines: a labeled Prometheus registry, range-clamped gauges, eagerly
// pre-registered instrument families, and uniform random draw helpers.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CommonLabels identify the service instance on every exported series.
type CommonLabels struct {
	Application string
	Environment string
	Version     string
	Instance    string
}

// Registry owns the Prometheus registry for one service instance. All
// instruments are created through its factory so that every series carries
// the common labels and renders in the same exposition output.
type Registry struct {
	registry   *prometheus.Registry
	registerer prometheus.Registerer
	factory    promauto.Factory
}

// NewRegistry creates an empty registry whose registered series all carry
// the given common labels as constant labels.
func NewRegistry(labels CommonLabels) *Registry {
	reg := prometheus.NewRegistry()
	wrapped := prometheus.WrapRegistererWith(prometheus.Labels{
		"application": labels.Application,
		"environment": labels.Environment,
		"version":     labels.Version,
		"instance":    labels.Instance,
	}, reg)

	return &Registry{
		registry:   reg,
		registerer: wrapped,
		factory:    promauto.With(wrapped),
	}
}

// Factory returns the promauto factory backed by this registry. Instruments
// created through it are registered immediately; duplicate registration
// panics, so every instrument is constructed exactly once at startup.
func (r *Registry) Factory() promauto.Factory { return r.factory }

// Registerer returns the label-wrapped registerer, for components that
// manage their own instrument lifecycle.
func (r *Registry) Registerer() prometheus.Registerer { return r.registerer }

// Gatherer exposes the registry for exposition and test inspection.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// Handler returns the text exposition handler for this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
