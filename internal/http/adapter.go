package http

import (
	"encoding/json"
	"net/http"

	"wifi-analytics/internal/shared/loggers"
	"wifi-analytics/internal/shared/svcerrors"
)

// ErrorResponse represents an HTTP error response.
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// errorHandlingAdapter turns an AppHttpHandler into an http.HandlerFunc. A returned error becomes a
// JSON ErrorResponse unless the handler already started the response, e.g. while streaming an
// artifact; then the error is only logged and recorded for the completion log.
func errorHandlingAdapter(httpHandler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appWriter, ok := w.(*appResponseWriter)
		if !ok {
			appWriter = newAppResponseWriter(w, r.ProtoMajor)
		}

		err := httpHandler.Handle(appWriter, r)
		if err == nil {
			return
		}

		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		appWriter.SetServiceError(svcErr)

		logger := loggers.Ctx(r.Context())
		if svcErr.IsInternalError() {
			logger.Error().
				Err(svcErr.Cause).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Msg("internal error in handler")
		}

		if appWriter.Started() {
			logger.Warn().
				Str(loggers.FieldErrorCode, svcErr.Code).
				Int(loggers.FieldHttpStatus, appWriter.Status()).
				Msg("error after response started, body truncated")
			return
		}
		writeErrorResponse(appWriter, r, svcErr)
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	loggers.Ctx(r.Context()).Debug().
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("errorCategory", svcErr.Category).
		Str("errorMessage", svcErr.Message).
		Int("httpStatusCode", svcErr.HttpStatusCode).
		Msg("error response")

	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(svcErr.HttpStatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		RequestID:        requestID(r),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	})
}
