package http

import (
	"net/http"

	"wifi-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records the status, size and service error of a response so the completion
// log and the metrics middleware can report them.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	if appWriter, ok := w.(*appResponseWriter); ok {
		return appWriter
	}
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// Started reports whether a status line has gone out. Headers can no longer change after that.
func (w *appResponseWriter) Started() bool {
	return w.Status() != 0
}

// StatusOrOK is the status to report for a handler that returned without writing anything.
func (w *appResponseWriter) StatusOrOK() int {
	if status := w.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
