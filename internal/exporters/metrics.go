package exporters

import (
	"device-telemetry/internal/shared/metrics"
)

// metricSnapshotWrittenTotal counts export attempts by outcome. Duplicates are counted
// under the empty error code because the file they target already holds the same session.
var (
	metricSnapshotWrittenTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "snapshot_written_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
