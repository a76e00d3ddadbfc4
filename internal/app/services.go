package app

import (
	"context"
	"fmt"
	"runtime"

	"wifi-analytics/internal/analytics"
	"wifi-analytics/internal/charts"
	"wifi-analytics/internal/datasets"
	"wifi-analytics/internal/reports"
	"wifi-analytics/internal/scanners"
	"wifi-analytics/internal/shared/configs"
	"wifi-analytics/internal/shared/filestorages"
	"wifi-analytics/internal/shared/loggers"
	"wifi-analytics/internal/stores"
	"wifi-analytics/internal/vendors"
)

// Services is the query side of the application, shared by the HTTP server and the batch CLI.
type Services struct {
	FileStorage   filestorages.FileStorage
	QueryService  analytics.QueryService
	ReportService reports.ReportService
}

// NewServices wires storage, the vendor table and the query and report services from config.
func NewServices(ctx context.Context, config *configs.Config) (*Services, error) {
	fileStorage, err := newFileStorage(ctx, config.FileStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	vendorTable, err := loadVendorTable(ctx, fileStorage, config.Vendors)
	if err != nil {
		_ = fileStorage.Close()
		return nil, fmt.Errorf("failed to load vendor table: %w", err)
	}
	loggers.Ctx(ctx).Info().Int(loggers.FieldVendors, vendorTable.Len()).Msg("vendor table loaded")

	parallel := scanners.ParallelOptions{
		Workers:     config.Scan.Workers,
		ChunkBytes:  config.Scan.ChunkBytes,
		QueueBuffer: config.Scan.QueueBuffer,
	}
	if parallel.Workers == 0 {
		parallel.Workers = runtime.NumCPU()
	}

	source := datasets.NewSource(fileStorage, config.Dataset.LogKey, config.Dataset.AccessPointsKey)
	queryService := analytics.NewQueryService(source, vendorTable, parallel)

	reportStore := stores.NewReportStore(fileStorage, config.Reports.Prefix)
	renderer := charts.NewBarChartRenderer(charts.Options{
		Width:   config.Reports.ChartWidth,
		Height:  config.Reports.ChartHeight,
		Caption: config.Reports.ChartCaption,
	})
	reportService := reports.NewReportService(queryService, reportStore, renderer)

	return &Services{
		FileStorage:   fileStorage,
		QueryService:  queryService,
		ReportService: reportService,
	}, nil
}

// Close releases the storage backend.
func (s *Services) Close() error {
	return s.FileStorage.Close()
}

func newFileStorage(ctx context.Context, config configs.FileStorageConfig) (filestorages.FileStorage, error) {
	if config.BucketURL != "" {
		return filestorages.NewBucketStorage(ctx, config.BucketURL)
	}
	return filestorages.NewFileStorage(config.RootDir)
}

// loadVendorTable reads the full IEEE registry when one is configured and falls back to the
// compiled-in snapshot otherwise.
func loadVendorTable(ctx context.Context, fileStorage filestorages.FileStorage, config configs.VendorsConfig) (*vendors.Table, error) {
	if config.RegistryKey == "" {
		return vendors.NewSnapshotTable(), nil
	}
	rc, err := fileStorage.Get(ctx, config.RegistryKey)
	if err != nil {
		return nil, err
	}
	plain, _, err := datasets.Decompress(rc)
	if err != nil {
		return nil, err
	}
	defer plain.Close()
	return vendors.LoadRegistryTable(plain)
}
