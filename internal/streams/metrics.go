package streams

import (
	"device-telemetry/internal/shared/metrics"
)

var (
	streamSessionSnapshot = "session_snapshot"

	metricSessionSnapshotPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "session_snapshot_published_total",
		},
		[]string{"stream_id"},
	)

	metricSessionSnapshotConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "session_snapshot_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
