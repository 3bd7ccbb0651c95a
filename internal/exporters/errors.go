package exporters

import (
	"fmt"

	"device-telemetry/internal/shared/svcerrors"
)

// SnapshotExportService errors
const (
	codeSnapshotNotFound = "EXP_1000"

	codeInternalSnapshotStoreFailed = "EXP_9000"
	codeInternalInvalidEvent        = "EXP_9001"
)

// errSnapshotNotFound returns an error when no export exists for a session.
func errSnapshotNotFound(sessionID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSnapshotNotFound, fmt.Sprintf("no snapshot exported for session %q", sessionID), cause)
}

// errInternalSnapshotStoreFailed returns an error when a snapshot store operation fails.
func errInternalSnapshotStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSnapshotStoreFailed, fmt.Errorf("snapshotStoreFailed: %w", cause))
}

// errInternalInvalidEvent returns an error when an event carries no session.
func errInternalInvalidEvent(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalInvalidEvent, fmt.Errorf("invalidSnapshotEvent: %w", cause))
}
