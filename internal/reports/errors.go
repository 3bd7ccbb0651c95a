package reports

import (
	"fmt"

	"device-telemetry/internal/shared/svcerrors"
)

// ReportService errors
const (
	codeUnknownField    = "RPT_1000"
	codeInvalidDate     = "RPT_1001"
	codeUnknownDevice   = "RPT_1002"
	codeSessionNotFound = "RPT_1003"

	codeInternalSessionStoreFailed = "RPT_9000"
)

func errUnknownField(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownField, cause.Error(), cause)
}

func errInvalidDate(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDate, cause.Error(), cause)
}

func errUnknownDevice(device string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeUnknownDevice, fmt.Sprintf("device %q not found in session", device), nil)
}

func errSessionNotFound(sessionID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSessionNotFound, fmt.Sprintf("session %q not found", sessionID), cause)
}

// errInternalSessionStoreFailed returns an error when a session cannot be read.
func errInternalSessionStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSessionStoreFailed, fmt.Errorf("sessionStoreFailed: %w", cause))
}
