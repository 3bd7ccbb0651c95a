package exporters

import (
	"context"
	"errors"
	"io"

	"device-telemetry/internal/events"
	"device-telemetry/internal/models"
	"device-telemetry/internal/shared/loggers"
	"device-telemetry/internal/shared/metrics"
	"device-telemetry/internal/shared/svcerrors"
	"device-telemetry/internal/stores"
)

var errMissingSession = errors.New("event has no session")

// SnapshotExportService writes created sessions to file storage and serves the written files.
//
//go:generate mockgen -source=snapshot_export_service.go -destination=./mocks/snapshot_export_service_mock.go -package=mocks
type SnapshotExportService interface {
	Export(ctx context.Context, event *events.SessionSnapshotEvent) *svcerrors.ServiceError
	// Open returns the exported JSON of a session. The caller closes the reader.
	Open(ctx context.Context, sessionID string) (io.ReadCloser, *svcerrors.ServiceError)
}

type snapshotExportService struct {
	snapshotStore stores.SessionSnapshotStore
}

func NewSnapshotExportService(snapshotStore stores.SessionSnapshotStore) SnapshotExportService {
	return &snapshotExportService{snapshotStore: snapshotStore}
}

func (s *snapshotExportService) Export(ctx context.Context, event *events.SessionSnapshotEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	if event.Session == nil {
		svcErr := errInternalInvalidEvent(errMissingSession)
		metricSnapshotWrittenTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	snapshot := models.NewSessionSnapshot(event.Session)
	if err := s.snapshotStore.Put(ctx, snapshot); err != nil {
		if errors.Is(err, stores.ErrSessionSnapshotAlreadyExist) {
			logger.Debug().Str(loggers.FieldSessionID, event.SessionID).Msg("session snapshot already exported, skipping")
			metricSnapshotWrittenTotal.WithLabelValues(metrics.ValueNoError).Inc()
			return nil
		}
		svcErr := errInternalSnapshotStoreFailed(err)
		logger.Error().Err(err).Str(loggers.FieldErrorCode, svcErr.Code).Msg("failed to export session snapshot")
		metricSnapshotWrittenTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	logger.Info().
		Str(loggers.FieldSessionID, snapshot.SessionID).
		Int(loggers.FieldSampleCount, snapshot.SampleCount).
		Msg("session snapshot exported")
	metricSnapshotWrittenTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return nil
}

func (s *snapshotExportService) Open(ctx context.Context, sessionID string) (io.ReadCloser, *svcerrors.ServiceError) {
	readCloser, err := s.snapshotStore.Open(ctx, sessionID)
	if err != nil {
		if errors.Is(err, stores.ErrSessionSnapshotNotFound) {
			return nil, errSnapshotNotFound(sessionID, err)
		}
		return nil, errInternalSnapshotStoreFailed(err)
	}
	return readCloser, nil
}
