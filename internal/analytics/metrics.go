package analytics

import (
	"wifi-analytics/internal/shared/metrics"
)

var (
	metricQueryTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "query_total",
		},
		[]string{"query", metrics.FieldErrorCode},
	)

	// metricQueryDuration covers the full dataset pass, including opening and decompressing it.
	metricQueryDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "query_duration_seconds",
			Buckets:   metrics.ScanBuckets,
		},
		[]string{"query"},
	)
)
