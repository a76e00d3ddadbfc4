package http

import (
	"bytes"
	"net/http"

	"wifi-analytics/internal/analytics"
	"wifi-analytics/internal/models"
	"wifi-analytics/internal/reports"

	"github.com/go-chi/chi/v5"
)

const (
	paramAccessPointID = "apID"
	paramDeviceID      = "deviceID"
	queryLimit         = "limit"
	querySince         = "since"
)

type topVendorsHandler struct {
	queryService analytics.QueryService
}

func NewTopVendorsHandler(queryService analytics.QueryService) AppHttpHandler {
	return &topVendorsHandler{queryService: queryService}
}

// Handle processes GET /vendors/top?limit=N requests.
func (h *topVendorsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	ranking, err := h.queryService.TopVendors(r.Context(), r.URL.Query().Get(queryLimit))
	if err != nil {
		return err
	}
	if ranking == nil {
		ranking = []models.VendorCount{}
	}
	writeJSON(w, r, http.StatusOK, ranking)
	return nil
}

type topVendorsChartHandler struct {
	reportService reports.ReportService
}

func NewTopVendorsChartHandler(reportService reports.ReportService) AppHttpHandler {
	return &topVendorsChartHandler{reportService: reportService}
}

// Handle processes GET /vendors/top/chart?limit=N requests.
func (h *topVendorsChartHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var chart bytes.Buffer
	contentType, err := h.reportService.WriteTopVendorsChart(r.Context(), &chart, r.URL.Query().Get(queryLimit))
	if err != nil {
		return err
	}
	w.Header().Set(headerContentType, contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = chart.WriteTo(w)
	return nil
}

type byteTotalsHandler struct {
	queryService analytics.QueryService
}

func NewByteTotalsHandler(queryService analytics.QueryService) AppHttpHandler {
	return &byteTotalsHandler{queryService: queryService}
}

// Handle processes GET /traffic/bytes requests.
func (h *byteTotalsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	cube, err := h.queryService.ByteTotals(r.Context())
	if err != nil {
		return err
	}
	if cube == nil {
		cube = models.NewByteCube()
	}
	writeJSON(w, r, http.StatusOK, cube)
	return nil
}

type uniqueClientsHandler struct {
	queryService analytics.QueryService
}

func NewUniqueClientsHandler(queryService analytics.QueryService) AppHttpHandler {
	return &uniqueClientsHandler{queryService: queryService}
}

// Handle processes GET /access-points/{apID}/clients?since=<epoch> requests.
func (h *uniqueClientsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	clients, err := h.queryService.UniqueClients(r.Context(), chi.URLParam(r, paramAccessPointID), r.URL.Query().Get(querySince))
	if err != nil {
		return err
	}
	if clients == nil {
		clients = []string{}
	}
	writeJSON(w, r, http.StatusOK, clients)
	return nil
}

type buildingChangesHandler struct {
	queryService analytics.QueryService
}

func NewBuildingChangesHandler(queryService analytics.QueryService) AppHttpHandler {
	return &buildingChangesHandler{queryService: queryService}
}

// Handle processes GET /devices/{deviceID}/building-changes requests.
func (h *buildingChangesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	changes, err := h.queryService.BuildingChanges(r.Context(), chi.URLParam(r, paramDeviceID))
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, models.FormatBuildingChanges(changes))
	return nil
}
