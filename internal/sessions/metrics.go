package sessions

import (
	"device-telemetry/internal/shared/metrics"
)

var (
	metricSessionCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSession,
			Name:      "created_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricSamplesSynthesizedTotal counts samples generated per device across all sessions.
	metricSamplesSynthesizedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSession,
			Name:      "samples_synthesized_total",
		},
		[]string{"device"},
	)
)
