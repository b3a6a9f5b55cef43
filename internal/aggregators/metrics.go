package aggregators

import (
	"log-analyzer/internal/shared/metrics"
)

var (
	metricSamplesAggregatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "samples_total",
			Help:      "Samples folded into per-URL aggregates.",
		},
	)

	// metricLastDistinctURLs is set once per aggregation pass, including failed ones.
	metricLastDistinctURLs = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "last_distinct_urls",
			Help:      "Distinct URLs seen by the last aggregation pass.",
		},
	)
)
