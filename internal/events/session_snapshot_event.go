package events

import (
	"device-telemetry/internal/models"
)

// SessionSnapshotEvent announces that a report session has been created and is ready to be
// exported. The session travels by pointer: it is immutable once stored, so the consumer
// reads the same series the report views read without copying them.
type SessionSnapshotEvent struct {
	SessionID string
	Session   *models.ReportSession
}

func NewSessionSnapshotEvent(session *models.ReportSession) SessionSnapshotEvent {
	return SessionSnapshotEvent{SessionID: session.ID, Session: session}
}
