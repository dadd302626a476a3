package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue суммирует значения счётчика с указанными метками
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			matched := 0
			for _, lp := range metric.GetLabel() {
				if v, ok := labels[lp.GetName()]; ok && v == lp.GetValue() {
					matched++
				}
			}
			if matched == len(labels) {
				total += metric.GetCounter().GetValue()
			}
		}
	}
	return total
}

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("test", reg)

	m.ObserveHTTPRequest("GET", "/api/v1/sessions", 200, 10*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/v1/sessions", 200, 20*time.Millisecond)
	m.ObserveStoreCommit("sessions", nil, time.Millisecond)
	m.ObserveStoreCommit("sessions", errors.New("boom"), time.Millisecond)
	m.IncSessionTransition("complete")

	assert.Equal(t, 2.0, counterValue(t, reg, "http_requests_total",
		map[string]string{"method": "GET", "route": "/api/v1/sessions", "status": "200"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "store_commits_total",
		map[string]string{"key": "sessions", "result": "ok"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "store_commits_total",
		map[string]string{"key": "sessions", "result": "error"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "sessions_transitions_total",
		map[string]string{"transition": "complete"}))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.ObserveStoreCommit("k", nil, time.Second)
		m.ObserveSlotsGenerated("dani", 3)
		m.IncSessionTransition("cancel")
	})
}
