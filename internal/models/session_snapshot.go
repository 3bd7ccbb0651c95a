package models

import "time"

// SessionSnapshot is the exported, JSON form of a ReportSession. Snapshots are
// write-only artifacts; sessions are never restored from them.
//
// Example JSON:
//
//	{
//	  "sessionId": "01JDQ7ZP8W6X3Y0T4M2N5K9ABC",
//	  "createdAt": "2024-11-26T22:00:03Z",
//	  "seed": 42,
//	  "stepMinutes": 15,
//	  "gridStart": "2024-11-26T00:00:00Z",
//	  "gridEnd": "2024-11-26T21:45:00Z",
//	  "sampleCount": 88,
//	  "series": [{"profile": {...}, "samples": [...]}]
//	}
type SessionSnapshot struct {
	SessionID   string                   `json:"sessionId"`
	CreatedAt   time.Time                `json:"createdAt"`
	Seed        uint64                   `json:"seed"`
	StepMinutes int                      `json:"stepMinutes"`
	GridStart   time.Time                `json:"gridStart"`
	GridEnd     time.Time                `json:"gridEnd"`
	SampleCount int                      `json:"sampleCount"`
	Series      []*DeviceTelemetrySeries `json:"series"`
}

func NewSessionSnapshot(session *ReportSession) *SessionSnapshot {
	return &SessionSnapshot{
		SessionID:   session.ID,
		CreatedAt:   session.CreatedAt,
		Seed:        session.Seed,
		StepMinutes: session.StepMinutes,
		GridStart:   session.Grid.Start(),
		GridEnd:     session.Grid.End(),
		SampleCount: session.Grid.Len(),
		Series:      session.Series,
	}
}
