package sessions

import (
	"fmt"

	"device-telemetry/internal/shared/svcerrors"
)

// SessionService errors
const (
	codeInvalidRange    = "SES_1000"
	codeInvalidStep     = "SES_1001"
	codeEmptyGrid       = "SES_1002"
	codeTooManySamples  = "SES_1003"
	codeSessionNotFound = "SES_1004"

	codeInternalInvalidBudget         = "SES_9000"
	codeInternalSessionStoreFailed    = "SES_9001"
	codeInternalSnapshotPublishFailed = "SES_9002"
)

// errInvalidRange returns an error when the requested window ends before it starts.
func errInvalidRange(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRange, "end must not be before start", cause)
}

// errInvalidStep returns an error for a non-positive grid step.
func errInvalidStep(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidStep, "stepMinutes must be positive", cause)
}

func errEmptyGrid(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeEmptyGrid, "window produced no samples", cause)
}

// errTooManySamples returns an error when the window would exceed the per-series sample limit.
func errTooManySamples(samples, limit int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeTooManySamples,
		fmt.Sprintf("window yields %d samples per device: must be <= %d", samples, limit), nil)
}

func errSessionNotFound(sessionID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSessionNotFound, fmt.Sprintf("session %q not found", sessionID), cause)
}

// errInternalInvalidBudget returns an error when a configured device profile cannot be synthesized.
func errInternalInvalidBudget(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalInvalidBudget, fmt.Errorf("invalidDeviceBudget: %w", cause))
}

// errInternalSessionStoreFailed returns an error when a session store operation fails.
func errInternalSessionStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSessionStoreFailed, fmt.Errorf("sessionStoreFailed: %w", cause))
}

// errInternalSnapshotPublishFailed returns an error when a session snapshot cannot be published.
func errInternalSnapshotPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSnapshotPublishFailed, fmt.Errorf("snapshotPublishFailed: %w", cause))
}
