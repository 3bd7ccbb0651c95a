package reports

import (
	"time"

	"device-telemetry/internal/models"
)

// OverviewReport summarizes a whole session: its window, the combined total of every
// field across devices, and the failure breakdown.
type OverviewReport struct {
	SessionID   string              `json:"sessionId"`
	CreatedAt   time.Time           `json:"createdAt"`
	Seed        uint64              `json:"seed"`
	StepMinutes int                 `json:"stepMinutes"`
	GridStart   time.Time           `json:"gridStart"`
	GridEnd     time.Time           `json:"gridEnd"`
	SampleCount int                 `json:"sampleCount"`
	Devices     []string            `json:"devices"`
	Totals      []models.FieldTotal `json:"totals"`
	Failures    *FailureReport      `json:"failures"`
}

// TimelineReport is the line-chart view of one device. NoData is set when the date filter
// matched nothing, so clients can tell an empty day from a failed request.
type TimelineReport struct {
	SessionID string                   `json:"sessionId"`
	Device    string                   `json:"device"`
	Date      string                   `json:"date,omitempty"`
	Samples   []models.TelemetrySample `json:"samples"`
	NoData    bool                     `json:"noData"`
}

type ComparisonReport struct {
	SessionID string                    `json:"sessionId"`
	Fields    []models.TelemetryField   `json:"fields"`
	Devices   []models.DeviceComparison `json:"devices"`
}

type FailureReport struct {
	SessionID string                      `json:"sessionId"`
	Devices   []models.DeviceFailureTotal `json:"devices"`
	Total     int64                       `json:"total"`
}

type DeviceTotalReport struct {
	SessionID string                `json:"sessionId"`
	Device    string                `json:"device"`
	Field     models.TelemetryField `json:"field"`
	Total     int64                 `json:"total"`
}
