package http

import (
	"net/http"
	"time"

	"wifi-analytics/internal/analytics"
	"wifi-analytics/internal/reports"
	"wifi-analytics/internal/shared/loggers"
	"wifi-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

type RouterOptions struct {
	// RequestTimeout bounds every query request. Zero means no deadline.
	RequestTimeout time.Duration
}

// NewRouter creates and configures the HTTP router.
func NewRouter(queryService analytics.QueryService, reportService reports.ReportService, httpLogger loggers.Logger, opts RouterOptions) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	topVendorsHandler := NewTopVendorsHandler(queryService)
	topVendorsChartHandler := NewTopVendorsChartHandler(reportService)
	byteTotalsHandler := NewByteTotalsHandler(queryService)
	uniqueClientsHandler := NewUniqueClientsHandler(queryService)
	buildingChangesHandler := NewBuildingChangesHandler(queryService)
	createReportHandler := NewCreateReportHandler(reportService)
	reportArtifactHandler := NewReportArtifactHandler(reportService)

	// Routes
	router.Group(func(r chi.Router) {
		r.Use(mwTimeout(opts.RequestTimeout))

		r.Get("/vendors/top", errorHandlingAdapter(topVendorsHandler))
		r.Get("/vendors/top/chart", errorHandlingAdapter(topVendorsChartHandler))
		r.Get("/traffic/bytes", errorHandlingAdapter(byteTotalsHandler))
		r.Get("/access-points/{apID}/clients", errorHandlingAdapter(uniqueClientsHandler))
		r.Get("/devices/{deviceID}/building-changes", errorHandlingAdapter(buildingChangesHandler))
		r.Post("/reports", errorHandlingAdapter(createReportHandler))
	})
	router.Get("/reports/{runID}/{artifact}", errorHandlingAdapter(reportArtifactHandler))
	router.Get("/metrics", metrics.Handler().ServeHTTP)

	return router
}
