package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBayConflict_SingleSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("detailing-test", reg)

	m.RecordBayConflict()
	m.RecordBayConflict()

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() != "bay_conflicts_total" {
			continue
		}
		found = true
		require.Len(t, f.GetMetric(), 1)
		metric := f.GetMetric()[0]
		assert.Equal(t, 2.0, metric.GetCounter().GetValue())
		require.Len(t, metric.GetLabel(), 1)
		assert.Equal(t, "service", metric.GetLabel()[0].GetName())
	}
	assert.True(t, found)
}

func TestRecord_NilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordBayConflict()
		m.RecordTransition("NOVO", "CONFIRMADO", "ok")
		m.RecordAppointmentCreated("public", "FIXED")
	})
}
