package analytics

import (
	"context"
	"errors"
	"fmt"

	"wifi-analytics/internal/accesspoints"
	"wifi-analytics/internal/models"
	"wifi-analytics/internal/records"
	"wifi-analytics/internal/shared/svcerrors"
	"wifi-analytics/internal/vendors"
)

// QueryService errors
const (
	codeInvalidArgument        = "QRY_1000"
	codeDatasetFormatViolation = "QRY_2000"
	codeInternalDatasetFailed  = "QRY_9000"
	codeInternalQueryCancelled = "QRY_9002"
)

// formatViolations are the scan failures caused by the content of the dataset rather than by
// the service.
var formatViolations = []error{
	records.ErrShortLine,
	records.ErrBadNumber,
	vendors.ErrUnknownVendor,
	accesspoints.ErrUnknownAccessPoint,
	accesspoints.ErrShortLine,
	models.ErrCounterOverflow,
	records.ErrLineTooLong,
}

// errInvalidArgument returns an error for a malformed query parameter.
func errInvalidArgument(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidArgument, msg, cause)
}

// errDatasetFormatViolation returns an error when the dataset does not match the fixed row layout.
// The message names the offending line so operators can find it.
func errDatasetFormatViolation(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidInputError(codeDatasetFormatViolation, fmt.Sprintf("dataset format violation: %v", cause), cause)
}

// errInternalDatasetFailed returns an error when a dataset cannot be opened or read.
func errInternalDatasetFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDatasetFailed, fmt.Errorf("datasetFailed: %w", cause))
}

// errInternalQueryCancelled returns an error when the caller went away mid-scan.
func errInternalQueryCancelled(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalQueryCancelled, fmt.Errorf("queryCancelled: %w", cause))
}

// classifyScanError maps a scanner failure to a ServiceError.
func classifyScanError(err error) *svcerrors.ServiceError {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr
	}
	for _, target := range formatViolations {
		if errors.Is(err, target) {
			return errDatasetFormatViolation(err)
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errInternalQueryCancelled(err)
	}
	return errInternalDatasetFailed(err)
}
