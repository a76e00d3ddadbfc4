package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryInvalidInput    = "invalid_input"
	categoryNotFound        = "not_found"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// NewInvalidArgumentError creates a ServiceError for a bad request parameter.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInvalidArgument,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: http.StatusBadRequest,
	}
}

// NewInvalidInputError creates a ServiceError for a dataset the service cannot process: the request
// was fine but the data it points at violates the expected format.
func NewInvalidInputError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInvalidInput,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: http.StatusUnprocessableEntity,
	}
}

// NewNotFoundError creates a ServiceError for a resource that does not exist.
func NewNotFoundError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryNotFound,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: http.StatusNotFound,
	}
}

// NewInternalError creates a ServiceError with category internal. The cause never reaches clients.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInternal,
		Code:           code,
		Message:        "internal server error",
		Cause:          cause,
		HttpStatusCode: http.StatusInternalServerError,
	}
}

// NewInternalErrorUndefined wraps an error that carries no service code (SYS_9001).
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

// NewInternalErrorPanic wraps a recovered panic (SYS_9000).
func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// PanicError converts a recovered value to a ServiceError.
func PanicError(recovered any) *ServiceError {
	if err, ok := recovered.(error); ok {
		return NewInternalErrorPanic(err)
	}
	return NewInternalErrorPanic(fmt.Errorf("%v", recovered))
}

// AsServiceError extracts a ServiceError from the error chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category       string // invalid_argument, invalid_input, not_found or internal
	Code           string // service-owned stable code (e.g. QRY_1000)
	Message        string // client-safe, human-readable
	Cause          error  // wrapped underlying error
	HttpStatusCode int    // HTTP status code
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
