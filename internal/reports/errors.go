package reports

import (
	"fmt"

	"wifi-analytics/internal/shared/svcerrors"
)

// ReportService errors
const (
	codeInvalidArtifactKey  = "RPT_1000"
	codeArtifactNotFound    = "RPT_1001"
	codeInternalStoreFailed = "RPT_9000"
	codeInternalChartFailed = "RPT_9001"
)

// errInvalidArtifactKey returns an error when a run id or artifact name is not a plain path
// segment.
func errInvalidArtifactKey(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidArtifactKey, "invalid run id or artifact name", cause)
}

// errArtifactNotFound returns an error when the requested artifact was never stored.
func errArtifactNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeArtifactNotFound, "report artifact not found", cause)
}

// errInternalStoreFailed returns an error when an artifact cannot be written or read.
func errInternalStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}

// errInternalChartFailed returns an error when the vendor chart cannot be rendered.
func errInternalChartFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalChartFailed, fmt.Errorf("chartRenderFailed: %w", cause))
}
