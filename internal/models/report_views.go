package models

// FieldTotal is the sum of one telemetry field.
type FieldTotal struct {
	Field TelemetryField `json:"field"`
	Total int64          `json:"total"`
}

// DeviceComparison is one row of a side-by-side device table. Totals follow the
// field order requested by the caller.
//
// Example JSON:
//
//	{
//	  "device": "Amazon Echo",
//	  "totals": [
//	    {"field": "packets_sent", "total": 9874},
//	    {"field": "packets_received", "total": 9790}
//	  ]
//	}
type DeviceComparison struct {
	Device string       `json:"device"`
	Totals []FieldTotal `json:"totals"`
}

// Total returns the total recorded for field, if present.
func (c DeviceComparison) Total(field TelemetryField) (int64, bool) {
	for _, t := range c.Totals {
		if t.Field == field {
			return t.Total, true
		}
	}
	return 0, false
}

// DeviceFailureTotal is one entry of a failure summary.
type DeviceFailureTotal struct {
	Device   string `json:"device"`
	Failures int64  `json:"failures"`
}
