package models

import (
	"errors"
	"fmt"
)

var ErrUnknownField = errors.New("unknown telemetry field")

// TelemetryField names a numeric column of TelemetrySample that can be aggregated.
type TelemetryField string

const (
	FieldPacketsSent      TelemetryField = "packets_sent"
	FieldPacketsReceived  TelemetryField = "packets_received"
	FieldRequestsSent     TelemetryField = "requests_sent"
	FieldRequestsReceived TelemetryField = "requests_received"
	FieldFailures         TelemetryField = "failures"
)

// AllTelemetryFields returns every aggregatable field in display order.
func AllTelemetryFields() []TelemetryField {
	return []TelemetryField{
		FieldPacketsSent,
		FieldPacketsReceived,
		FieldRequestsSent,
		FieldRequestsReceived,
		FieldFailures,
	}
}

func ParseTelemetryField(s string) (TelemetryField, error) {
	f := TelemetryField(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}

func (f TelemetryField) IsValid() bool {
	switch f {
	case FieldPacketsSent, FieldPacketsReceived, FieldRequestsSent, FieldRequestsReceived, FieldFailures:
		return true
	default:
		return false
	}
}

// Value reads the field from a sample. It panics on an invalid field; validate first.
func (f TelemetryField) Value(s TelemetrySample) int64 {
	switch f {
	case FieldPacketsSent:
		return s.PacketsSent
	case FieldPacketsReceived:
		return s.PacketsReceived
	case FieldRequestsSent:
		return s.RequestsSent
	case FieldRequestsReceived:
		return s.RequestsReceived
	case FieldFailures:
		return s.Failures
	default:
		panic(fmt.Sprintf("invalid TelemetryField: %q", f))
	}
}
