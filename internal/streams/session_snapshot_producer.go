package streams

import (
	"context"

	"device-telemetry/internal/events"
	"device-telemetry/internal/models"
)

// SessionSnapshotProducer publishes one SessionSnapshotEvent per created session.
//
// The partition key is the session ID. Each session is exported exactly once, so the key only
// spreads exports across partition workers; no two events ever compete for the same file.
//
//go:generate mockgen -source=session_snapshot_producer.go -destination=./mocks/session_snapshot_producer_mock.go -package=mocks
type SessionSnapshotProducer interface {
	Produce(ctx context.Context, session *models.ReportSession) error
}

type sessionSnapshotProducer struct {
	queue *PartitionedQueue[events.SessionSnapshotEvent]
}

func NewSessionSnapshotProducer(queue *PartitionedQueue[events.SessionSnapshotEvent]) SessionSnapshotProducer {
	return &sessionSnapshotProducer{queue: queue}
}

func (producer *sessionSnapshotProducer) Produce(ctx context.Context, session *models.ReportSession) error {
	event := events.NewSessionSnapshotEvent(session)
	if err := producer.queue.Publish(ctx, event.SessionID, event); err != nil {
		return err
	}
	metricSessionSnapshotPublishedTotal.WithLabelValues(streamSessionSnapshot).Inc()
	return nil
}
