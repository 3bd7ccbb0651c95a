package http

import (
	"device-telemetry/internal/shared/svcerrors"
)

// Request decoding errors
const (
	codeInvalidRequestBody = "API_1000"
)

func errInvalidRequestBody(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestBody, msg, cause)
}
