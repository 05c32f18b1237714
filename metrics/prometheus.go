package metrics

import (
	"github.com/drakos74/cross-validation/confusion"
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus holds the prometheus collectors for cross-validation runs.
type Prometheus struct {
	Outcomes *prometheus.CounterVec
	Folds    prometheus.Counter
	Duration prometheus.Histogram
}

// NewPrometheusMetrics creates the collectors under the given namespace.
func NewPrometheusMetrics(namespace string) Prometheus {
	return Prometheus{
		Outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "outcomes_total",
				Help:      "classification outcomes of all folds",
			}, []string{"outcome"}),
		Folds: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "folds_total",
				Help:      "completed folds",
			}),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fold_duration_seconds",
				Help:      "time spent training and classifying a fold",
				Buckets:   prometheus.DefBuckets,
			}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Outcomes, p.Folds, p.Duration}
}

func (p Prometheus) add(c confusion.Counts) {
	p.Outcomes.WithLabelValues(string(confusion.TruePositive)).Add(float64(c.TP))
	p.Outcomes.WithLabelValues(string(confusion.TrueNegative)).Add(float64(c.TN))
	p.Outcomes.WithLabelValues(string(confusion.FalsePositive)).Add(float64(c.FP))
	p.Outcomes.WithLabelValues(string(confusion.FalseNegative)).Add(float64(c.FN))
}
