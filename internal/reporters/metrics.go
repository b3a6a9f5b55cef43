package reporters

import (
	"log-analyzer/internal/shared/metrics"
)

var (
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "runs_total",
			Help:      "Report runs by error code; empty code means a report was written.",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRunDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "run_duration_seconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{metrics.FieldErrorCode},
	)

	metricLastLatencySeconds = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "last_latency_seconds",
			Help:      "Approximate request latency quantiles of the last written report.",
		},
		[]string{metrics.FieldQuantile},
	)

	metricLastReportRows = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "last_report_rows",
			Help:      "Rows written to the last report.",
		},
	)
)
