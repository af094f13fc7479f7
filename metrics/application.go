package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type ApplicationMetrics struct {
	comparisonsTotal   prometheus.Counter
	comparisonsFailed  prometheus.Counter
	syncsTotal         prometheus.Counter
	syncsFailed        prometheus.Counter
	thresholdBreaches  prometheus.Counter
}

var applicationMetrics *ApplicationMetrics

func GetApplicationMetrics() *ApplicationMetrics {
	if applicationMetrics != nil {
		return applicationMetrics
	}

	applicationMetrics = &ApplicationMetrics{
		comparisonsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "comparisons_total",
			Help:      "Number of comparison runs started",
		}),
		comparisonsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "comparisons_failed_total",
			Help:      "Number of comparison runs aborted by a listing failure",
		}),
		syncsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "syncs_total",
			Help:      "Number of sync invocations",
		}),
		syncsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "syncs_failed_total",
			Help:      "Number of failed sync invocations",
		}),
		thresholdBreaches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "size_threshold_breaches_total",
			Help:      "Number of comparison runs whose aggregated delta exceeded the configured warning threshold",
		}),
	}

	registry.MustRegister(
		applicationMetrics.comparisonsTotal,
		applicationMetrics.comparisonsFailed,
		applicationMetrics.syncsTotal,
		applicationMetrics.syncsFailed,
		applicationMetrics.thresholdBreaches,
	)

	return applicationMetrics
}

func (m *ApplicationMetrics) ComparisonStarted() {
	m.comparisonsTotal.Inc()
}

func (m *ApplicationMetrics) ComparisonFailed() {
	m.comparisonsFailed.Inc()
}

func (m *ApplicationMetrics) SyncStarted() {
	m.syncsTotal.Inc()
}

func (m *ApplicationMetrics) SyncFailed() {
	m.syncsFailed.Inc()
}

func (m *ApplicationMetrics) SizeThresholdBreached() {
	m.thresholdBreaches.Inc()
}
