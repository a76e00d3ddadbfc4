package http

import (
	"io"
	"net/http"

	"wifi-analytics/internal/reports"
	"wifi-analytics/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
)

const (
	paramRunID    = "runID"
	paramArtifact = "artifact"
	queryAP       = "ap"
	queryDevice   = "device"
)

type createReportHandler struct {
	reportService reports.ReportService
}

func NewCreateReportHandler(reportService reports.ReportService) AppHttpHandler {
	return &createReportHandler{reportService: reportService}
}

// Handle processes POST /reports?ap=..&since=..&device=..&limit=N requests.
func (h *createReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	result, err := h.reportService.Run(r.Context(), reports.ReportRequest{
		AccessPointID: query.Get(queryAP),
		Since:         query.Get(querySince),
		DeviceID:      query.Get(queryDevice),
		TopLimit:      query.Get(queryLimit),
	})
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusCreated, result)
	return nil
}

type reportArtifactHandler struct {
	reportService reports.ReportService
}

func NewReportArtifactHandler(reportService reports.ReportService) AppHttpHandler {
	return &reportArtifactHandler{reportService: reportService}
}

// Handle processes GET /reports/{runID}/{artifact} requests.
func (h *reportArtifactHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	rc, contentType, err := h.reportService.OpenArtifact(r.Context(), chi.URLParam(r, paramRunID), chi.URLParam(r, paramArtifact))
	if err != nil {
		return err
	}
	defer rc.Close()

	w.Header().Set(headerContentType, contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		loggers.Ctx(r.Context()).Warn().Err(err).Msg("failed to stream report artifact")
	}
	return nil
}
