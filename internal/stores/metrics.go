package stores

import (
	"device-telemetry/internal/shared/metrics"
)

var (
	metricSessionsActive = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSession,
			Name:      "sessions_active",
		},
	)

	metricSessionsEvictedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSession,
			Name:      "sessions_evicted_total",
		},
	)
)
