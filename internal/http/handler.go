package http

import (
	"encoding/json"
	"net/http"

	"wifi-analytics/internal/shared/loggers"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// writeJSON writes v with status. Encoding errors are logged only: the status line is already out.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		loggers.Ctx(r.Context()).Warn().Err(err).Msg("failed to write response body")
	}
}
