package models

import "time"

// ReportSession is the telemetry snapshot shared read-only by every report view of one
// session. Series are generated once when the session is created and never regenerated.
type ReportSession struct {
	ID          string
	CreatedAt   time.Time
	Seed        uint64
	StepMinutes int
	Grid        TimeGrid
	Series      []*DeviceTelemetrySeries
}

// SeriesFor looks up the series of a device by name.
func (s *ReportSession) SeriesFor(device string) (*DeviceTelemetrySeries, bool) {
	for _, series := range s.Series {
		if series.Device() == device {
			return series, true
		}
	}
	return nil, false
}

// DeviceNames returns device names in configuration order.
func (s *ReportSession) DeviceNames() []string {
	names := make([]string, 0, len(s.Series))
	for _, series := range s.Series {
		names = append(names, series.Device())
	}
	return names
}

// SeriesList returns every device series in configuration order.
func (s *ReportSession) SeriesList() []*DeviceTelemetrySeries {
	return s.Series
}
