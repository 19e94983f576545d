package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAppliesCommonLabels(t *testing.T) {
	reg := NewRegistry(CommonLabels{
		Application: "commerce-analytics",
		Environment: "test",
		Version:     "1.0.0",
		Instance:    "local",
	})

	c := reg.Factory().NewCounter(prometheus.CounterOpts{
		Name: "demo_events_total",
		Help: "test",
	})
	c.Inc()

	families, err := reg.Gatherer().Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	require.Len(t, families[0].GetMetric(), 1)

	got := map[string]string{}
	for _, lp := range families[0].GetMetric()[0].GetLabel() {
		got[lp.GetName()] = lp.GetValue()
	}
	want := map[string]string{
		"application": "commerce-analytics",
		"environment": "test",
		"version":     "1.0.0",
		"instance":    "local",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("common labels mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryHandlerServesExposition(t *testing.T) {
	reg := NewRegistry(CommonLabels{
		Application: "metrics-demo",
		Environment: "test",
		Version:     "1.0.0",
		Instance:    "local",
	})
	reg.Factory().NewCounter(prometheus.CounterOpts{
		Name: "demo_events_total",
		Help: "test",
	}).Add(3)

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "demo_events_total"), "exposition contains the series")
	assert.True(t, strings.Contains(body, `application="metrics-demo"`), "exposition carries common labels")
}

func TestRegistryIsolation(t *testing.T) {
	// Two registries may register the same instrument name without clashing.
	labels := CommonLabels{Application: "a", Environment: "t", Version: "1", Instance: "i"}
	a := NewRegistry(labels)
	b := NewRegistry(labels)

	a.Factory().NewCounter(prometheus.CounterOpts{Name: "demo_events_total", Help: "test"})
	assert.NotPanics(t, func() {
		b.Factory().NewCounter(prometheus.CounterOpts{Name: "demo_events_total", Help: "test"})
	})
}
