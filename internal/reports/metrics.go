package reports

import (
	"device-telemetry/internal/shared/metrics"
)

const (
	viewOverview    = "overview"
	viewTimeline    = "timeline"
	viewComparison  = "comparison"
	viewFailures    = "failures"
	viewDeviceTotal = "device_total"
)

var (
	metricReportRenderedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "rendered_total",
		},
		[]string{"view", metrics.FieldErrorCode},
	)
)
