package streams

import (
	"wifi-analytics/internal/shared/metrics"
)

var (
	streamLineChunk = "line_chunk"

	metricLineChunkPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "line_chunk_published_total",
		},
		[]string{"stream_id"},
	)

	metricLineChunkBytesPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "line_chunk_bytes_published_total",
		},
		[]string{"stream_id"},
	)

	metricLineChunkConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "line_chunk_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
