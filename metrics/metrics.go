// Package metrics exposes cross-validation fold results as prometheus metrics.
package metrics

import (
	"sync"

	"github.com/drakos74/cross-validation/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics observes fold results of a runner.
type Metrics struct {
	mutex      *sync.Mutex
	prometheus Prometheus
}

// New creates new metrics under the given namespace.
func New(namespace string) *Metrics {
	return &Metrics{
		mutex:      new(sync.Mutex),
		prometheus: NewPrometheusMetrics(namespace),
	}
}

// Register registers all collectors with the given registerer.
func (m *Metrics) Register(registerer prometheus.Registerer) error {
	for _, c := range m.prometheus.collectors() {
		if err := registerer.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Observe records a completed fold.
func (m *Metrics) Observe(result runner.FoldResult) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.prometheus.add(result.Counts)
	m.prometheus.Folds.Inc()
	m.prometheus.Duration.Observe(result.Duration.Seconds())
}

// Prometheus returns the underlying collectors.
func (m *Metrics) Prometheus() Prometheus {
	return m.prometheus
}
