package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// helper function

func ParseLables(labelsWithValues ...string) prometheus.Labels {
	constLabels := map[string]string{}

	if len(labelsWithValues)%2 == 0 {
		for i := 1; i < len(labelsWithValues); i += 2 {
			constLabels[labelsWithValues[i-1]] = labelsWithValues[i]
		}
	} else {
		panic("invalid labels")
	}

	return constLabels
}

func CounterInc(counter prometheus.Counter) {
	if counter == nil {
		return
	}

	counter.Inc()
}

func SetGauge(gauge prometheus.Gauge, v float64) {
	if gauge == nil {
		return
	}

	gauge.Set(v)
}

func HistogramObserve(histogram prometheus.Histogram, v float64) {
	if histogram == nil {
		return
	}

	histogram.Observe(v)
}

// MustRegister registers every non-nil collector with reg, falling back to
// the default registerer when reg is nil
func MustRegister(reg prometheus.Registerer, collectors ...prometheus.Collector) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	for _, c := range collectors {
		if c == nil {
			continue
		}

		reg.MustRegister(c)
	}
}

// Snapshot flattens the gathered families into name to value. Counters and
// gauges report their value, histograms their sample count.
func Snapshot(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	values := make(map[string]float64, len(families))

	for _, family := range families {
		for _, m := range family.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[family.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[family.GetName()] += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				values[family.GetName()+"_count"] += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}

	return values, nil
}

func MetricName2Help(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
