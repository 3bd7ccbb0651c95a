package models

import "time"

// TelemetrySample is one synthesized row of a device series at one grid instant.
//
// Invariants held by every sample produced by the synthesizer:
//   - PacketsSent >= 1 and PacketsReceived in [0, PacketsSent]
//   - RequestsSent >= 1 and RequestsReceived in [0, RequestsSent]
//   - Failures == RequestsSent - RequestsReceived
//
// Example JSON:
//
//	{
//	  "timestamp": "2024-11-26T00:15:00Z",
//	  "packetsSent": 181,
//	  "packetsReceived": 179,
//	  "requestsSent": 97,
//	  "requestsReceived": 97,
//	  "failures": 0
//	}
type TelemetrySample struct {
	Timestamp        time.Time `json:"timestamp"`
	PacketsSent      int64     `json:"packetsSent"`
	PacketsReceived  int64     `json:"packetsReceived"`
	RequestsSent     int64     `json:"requestsSent"`
	RequestsReceived int64     `json:"requestsReceived"`
	Failures         int64     `json:"failures"`
}

// DeviceTelemetrySeries is one device's samples across a grid, in timestamp order.
type DeviceTelemetrySeries struct {
	Profile DeviceProfile     `json:"profile"`
	Samples []TelemetrySample `json:"samples"`
}

func (s *DeviceTelemetrySeries) Device() string {
	return s.Profile.Name
}

func (s *DeviceTelemetrySeries) Len() int {
	return len(s.Samples)
}
