package reports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"wifi-analytics/internal/analytics"
	"wifi-analytics/internal/charts"
	"wifi-analytics/internal/models"
	"wifi-analytics/internal/shared/loggers"
	"wifi-analytics/internal/shared/metrics"
	"wifi-analytics/internal/shared/svcerrors"
	"wifi-analytics/internal/shared/ulid"
	"wifi-analytics/internal/stores"
)

// Artifact names within a run directory.
const (
	ArtifactTopVendors      = "top_vendors.json"
	ArtifactTopVendorsChart = "top_vendors.jpg"
	ArtifactByteTotals      = "byte_totals.json"
	ArtifactByteTotalsTable = "byte_totals.parquet"
	ArtifactUniqueClients   = "unique_clients.json"
	ArtifactBuildingChanges = "building_changes.json"
)

var contentTypes = map[string]string{
	".json":    "application/json",
	".jpg":     "image/jpeg",
	".parquet": "application/vnd.apache.parquet",
}

// ReportRequest holds the raw parameters of one report run. The QueryService validates all of
// them before the first scan.
type ReportRequest struct {
	AccessPointID string
	Since         string
	DeviceID      string
	TopLimit      string
}

// ReportResult is what a run computed and where its artifacts were stored.
type ReportResult struct {
	RunID           string               `json:"run_id"`
	TopVendors      []models.VendorCount `json:"top_vendors"`
	Dates           []string             `json:"dates"`
	UniqueClients   []string             `json:"unique_clients"`
	BuildingChanges []string             `json:"building_changes"`
	// Artifacts maps artifact names to storage keys.
	Artifacts map[string]string `json:"artifacts"`

	ByteTotals models.ByteCube `json:"-"`
}

// ReportService runs the four queries as one batch and stores every result under a fresh run id.
//
//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	Run(ctx context.Context, req ReportRequest) (*ReportResult, error)
	// WriteTopVendorsChart renders the vendor ranking to w and returns the image media type.
	// Nothing is written when the query or the rendering fails.
	WriteTopVendorsChart(ctx context.Context, w io.Writer, limit string) (string, error)
	// OpenArtifact opens a stored artifact and returns its media type.
	OpenArtifact(ctx context.Context, runID string, name string) (io.ReadCloser, string, error)
}

type reportService struct {
	queryService analytics.QueryService
	reportStore  stores.ReportStore
	renderer     charts.Renderer
}

func NewReportService(queryService analytics.QueryService, reportStore stores.ReportStore, renderer charts.Renderer) ReportService {
	return &reportService{
		queryService: queryService,
		reportStore:  reportStore,
		renderer:     renderer,
	}
}

func (s *reportService) Run(ctx context.Context, req ReportRequest) (*ReportResult, error) {
	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldRunID, runID).Logger()
	ctx = logger.WithContext(ctx)
	logger.Debug().Msgf("started report with access point: %s, since: %s, device: %s", req.AccessPointID, req.Since, req.DeviceID)

	result, err := s.run(ctx, runID, req)
	if err != nil {
		code := codeOf(err)
		metricReportRunTotal.WithLabelValues(code).Inc()
		return nil, err
	}

	metricReportRunTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Info().Int(loggers.FieldResults, len(result.Artifacts)).Msg("report completed")
	return result, nil
}

func (s *reportService) run(ctx context.Context, runID string, req ReportRequest) (*ReportResult, error) {
	if err := s.queryService.ValidateReport(req.TopLimit, req.AccessPointID, req.Since, req.DeviceID); err != nil {
		return nil, err
	}
	ranking, err := s.queryService.TopVendors(ctx, req.TopLimit)
	if err != nil {
		return nil, err
	}
	cube, err := s.queryService.ByteTotals(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := s.queryService.UniqueClients(ctx, req.AccessPointID, req.Since)
	if err != nil {
		return nil, err
	}
	changes, err := s.queryService.BuildingChanges(ctx, req.DeviceID)
	if err != nil {
		return nil, err
	}

	result := &ReportResult{
		RunID:           runID,
		TopVendors:      ranking,
		Dates:           cube.Dates(),
		UniqueClients:   clients,
		BuildingChanges: models.FormatBuildingChanges(changes),
		Artifacts:       make(map[string]string),
		ByteTotals:      cube,
	}

	var chart bytes.Buffer
	if err := s.renderer.Render(&chart, ranking); err != nil {
		return nil, errInternalChartFailed(err)
	}

	puts := []struct {
		name string
		put  func() (string, error)
	}{
		{ArtifactTopVendors, func() (string, error) { return s.reportStore.PutJSON(ctx, runID, ArtifactTopVendors, ranking) }},
		{ArtifactTopVendorsChart, func() (string, error) { return s.reportStore.PutBlob(ctx, runID, ArtifactTopVendorsChart, chart.Bytes()) }},
		{ArtifactByteTotals, func() (string, error) { return s.reportStore.PutJSON(ctx, runID, ArtifactByteTotals, cube) }},
		{ArtifactByteTotalsTable, func() (string, error) { return s.reportStore.PutByteTotals(ctx, runID, ArtifactByteTotalsTable, cube) }},
		{ArtifactUniqueClients, func() (string, error) { return s.reportStore.PutJSON(ctx, runID, ArtifactUniqueClients, clients) }},
		{ArtifactBuildingChanges, func() (string, error) {
			return s.reportStore.PutJSON(ctx, runID, ArtifactBuildingChanges, result.BuildingChanges)
		}},
	}
	for _, p := range puts {
		key, err := p.put()
		if err != nil {
			return nil, errInternalStoreFailed(err)
		}
		result.Artifacts[p.name] = key
		metricReportArtifactTotal.WithLabelValues(path.Ext(p.name)[1:]).Inc()
		loggers.Ctx(ctx).Debug().Str(loggers.FieldArtifactKey, key).Msg("artifact stored")
	}
	return result, nil
}

func (s *reportService) WriteTopVendorsChart(ctx context.Context, w io.Writer, limit string) (string, error) {
	ranking, err := s.queryService.TopVendors(ctx, limit)
	if err != nil {
		return "", err
	}
	var chart bytes.Buffer
	if err := s.renderer.Render(&chart, ranking); err != nil {
		return "", errInternalChartFailed(err)
	}
	if _, err := chart.WriteTo(w); err != nil {
		return "", errInternalChartFailed(err)
	}
	return s.renderer.ContentType(), nil
}

func (s *reportService) OpenArtifact(ctx context.Context, runID string, name string) (io.ReadCloser, string, error) {
	if !ulid.Valid(runID) {
		return nil, "", errInvalidArtifactKey(fmt.Errorf("run id %q is not a ULID", runID))
	}
	rc, err := s.reportStore.Get(ctx, runID, name)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrInvalidArtifactKey):
			return nil, "", errInvalidArtifactKey(err)
		case errors.Is(err, stores.ErrArtifactNotFound):
			return nil, "", errArtifactNotFound(err)
		default:
			return nil, "", errInternalStoreFailed(err)
		}
	}
	contentType, ok := contentTypes[path.Ext(name)]
	if !ok {
		contentType = "application/octet-stream"
	}
	return rc, contentType, nil
}

func codeOf(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return svcerrors.NewInternalErrorUndefined(err).Code
}
