package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLables(t *testing.T) {
	t.Parallel()

	labels := ParseLables("chain_id", "2000", "node", "a")
	assert.Equal(t, prometheus.Labels{"chain_id": "2000", "node": "a"}, labels)

	assert.Empty(t, ParseLables())

	assert.Panics(t, func() {
		ParseLables("odd")
	})
}

func TestNilSafeHelpers(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		CounterInc(nil)
		SetGauge(nil, 1)
		HistogramObserve(nil, 1)
		MustRegister(prometheus.NewRegistry(), nil, nil)
	})
}

func TestMetricName2Help(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "last hashes hits", MetricName2Help("last_hashes_hits"))
}

func TestMustRegisterAndSnapshot(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "builds"})
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "cached"})
	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{Name: "build_seconds"})

	MustRegister(reg, counter, nil, gauge, histogram)

	CounterInc(counter)
	CounterInc(counter)
	SetGauge(gauge, 3)
	HistogramObserve(histogram, 0.5)

	values, err := Snapshot(reg)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"builds":              2,
		"cached":              3,
		"build_seconds_count": 1,
	}, values)

	assert.Panics(t, func() {
		MustRegister(reg, counter)
	})
}
