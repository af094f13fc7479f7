package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const LabelNameStatus = "status"

// ComparisonMetric exposes the outcome of the most recent comparison run.
type ComparisonMetric struct {
	sourceEntries      prometheus.Gauge
	destinationEntries prometheus.Gauge
	deltaFiles         *prometheus.GaugeVec
	deltaBytes         *prometheus.GaugeVec
	durationSeconds    prometheus.Gauge
	lastRunTimestamp   prometheus.Gauge
}

var comparisonMetric *ComparisonMetric

func GetComparisonMetric() *ComparisonMetric {
	if comparisonMetric != nil {
		return comparisonMetric
	}

	comparisonMetric = &ComparisonMetric{
		sourceEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "source_entries",
			Help:      "Entries in the source listing of the last run",
		}),
		destinationEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "destination_entries",
			Help:      "Entries in the destination listing of the last run",
		}),
		deltaFiles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "files",
			Help:      "Classified files of the last run, by status",
		}, []string{LabelNameStatus}),
		deltaBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bytes",
			Help:      "Classified bytes of the last run, by status",
		}, []string{LabelNameStatus}),
		durationSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Duration of the last comparison run",
		}),
		lastRunTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix timestamp of the last successful comparison run",
		}),
	}

	registry.MustRegister(
		comparisonMetric.sourceEntries,
		comparisonMetric.destinationEntries,
		comparisonMetric.deltaFiles,
		comparisonMetric.deltaBytes,
		comparisonMetric.durationSeconds,
		comparisonMetric.lastRunTimestamp,
	)

	return comparisonMetric
}

func (m *ComparisonMetric) UpdateListings(source, destination int) {
	m.sourceEntries.Set(float64(source))
	m.destinationEntries.Set(float64(destination))
}

func (m *ComparisonMetric) UpdateStatus(status string, files int, bytes uint64) {
	m.deltaFiles.WithLabelValues(status).Set(float64(files))
	m.deltaBytes.WithLabelValues(status).Set(float64(bytes))
}

func (m *ComparisonMetric) UpdateRun(startedAt time.Time, duration time.Duration) {
	m.durationSeconds.Set(duration.Seconds())
	m.lastRunTimestamp.Set(float64(startedAt.Unix()))
}
