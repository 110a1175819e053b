package runtime

import (
	"github.com/dogechain-lab/blockenv/helper/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "envinfo"

// Metrics represents the env assembler metrics
type Metrics struct {
	// Hash window served from cache
	lastHashesHits prometheus.Counter
	// Hash window built
	lastHashesMisses prometheus.Counter
	// Hash window build failures
	buildFailures prometheus.Counter
	// Hash window build duration
	buildSeconds prometheus.Histogram
	// Cached hash windows
	cachedWindows prometheus.Gauge
}

func (m *Metrics) LastHashesHitsInc() {
	metrics.CounterInc(m.lastHashesHits)
}

func (m *Metrics) LastHashesMissesInc() {
	metrics.CounterInc(m.lastHashesMisses)
}

func (m *Metrics) BuildFailuresInc() {
	metrics.CounterInc(m.buildFailures)
}

func (m *Metrics) BuildSecondsObserve(v float64) {
	metrics.HistogramObserve(m.buildSeconds, v)
}

func (m *Metrics) SetCachedWindows(v float64) {
	metrics.SetGauge(m.cachedWindows, v)
}

func newMetrics(namespace string, constLabels prometheus.Labels) *Metrics {
	return &Metrics{
		lastHashesHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "last_hashes_hits",
			Help:        metrics.MetricName2Help("last_hashes_hits"),
			ConstLabels: constLabels,
		}),
		lastHashesMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "last_hashes_misses",
			Help:        metrics.MetricName2Help("last_hashes_misses"),
			ConstLabels: constLabels,
		}),
		buildFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "build_failures",
			Help:        "ancestor hash window builds that failed",
			ConstLabels: constLabels,
		}),
		buildSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "build_seconds",
			Help:        "ancestor hash window build time (seconds)",
			ConstLabels: constLabels,
		}),
		cachedWindows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "cached_windows",
			Help:        "hash windows held by the assembler cache",
			ConstLabels: constLabels,
		}),
	}
}

// GetPrometheusMetrics return the env assembler metrics instance registered
// with reg, or with the default registerer when reg is nil
func GetPrometheusMetrics(reg prometheus.Registerer, namespace string, labelsWithValues ...string) *Metrics {
	m := newMetrics(namespace, metrics.ParseLables(labelsWithValues...))

	metrics.MustRegister(
		reg,
		m.lastHashesHits,
		m.lastHashesMisses,
		m.buildFailures,
		m.buildSeconds,
		m.cachedWindows,
	)

	return m
}

// NilMetrics will return the non operational env assembler metrics
func NilMetrics() *Metrics {
	return &Metrics{}
}
