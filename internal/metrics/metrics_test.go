package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOperation(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordOperation("create_checklist", nil)
	m.RecordOperation("create_checklist", nil)
	m.RecordOperation("create_checklist", errors.New("duplicate"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("create_checklist", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("create_checklist", ResultError)))
}

func TestRecordOperation_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.RecordOperation("noop", nil) })
}

func TestObserveStore(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveStore(3, 17)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.StoreChecklists))
	assert.Equal(t, 17.0, testutil.ToFloat64(m.StoreItems))
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}

func TestHTTPRequestDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.HTTPRequestDuration.WithLabelValues("GET", "/checklist").Observe(0.02)
	m.HTTPRequestDuration.WithLabelValues("GET", "/checklist").Observe(0.3)

	families, err := reg.Gather()
	require.NoError(t, err)

	var hist *dto.Histogram
	for _, mf := range families {
		if mf.GetName() == "checklist_http_request_duration_seconds" {
			require.Len(t, mf.GetMetric(), 1)
			hist = mf.GetMetric()[0].GetHistogram()
		}
	}
	require.NotNil(t, hist)
	assert.Equal(t, uint64(2), hist.GetSampleCount())
	assert.InDelta(t, 0.32, hist.GetSampleSum(), 1e-9)
}
