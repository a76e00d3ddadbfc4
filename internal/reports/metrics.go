package reports

import (
	"wifi-analytics/internal/shared/metrics"
)

var (
	metricReportRunTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "run_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricReportArtifactTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "artifacts_total",
		},
		[]string{"kind"},
	)
)
