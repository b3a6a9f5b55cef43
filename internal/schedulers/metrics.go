package schedulers

import (
	"log-analyzer/internal/shared/metrics"
)

const (
	triggerInterval = "interval"
	triggerManual   = "manual"
	triggerStartup  = "startup"
)

var (
	metricScheduledRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "runs_total",
			Help:      "Runs started by the scheduler, by trigger and error code.",
		},
		[]string{"trigger", metrics.FieldErrorCode},
	)
)
