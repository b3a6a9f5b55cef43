package ingestors

import (
	"log-analyzer/internal/shared/metrics"
)

const (
	valueParsed = "parsed"
	valueFailed = "failed"
)

var (
	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_total",
			Help:      "Access log lines read, by parse result.",
		},
		[]string{metrics.FieldResult},
	)

	metricLastSuccessRate = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "last_success_rate",
			Help:      "Share of lines parsed in the last completed read pass.",
		},
	)

	linesParsed = metricLinesTotal.WithLabelValues(valueParsed)
	linesFailed = metricLinesTotal.WithLabelValues(valueFailed)
)
