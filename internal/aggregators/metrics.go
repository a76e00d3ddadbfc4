package aggregators

import (
	"wifi-analytics/internal/shared/metrics"
)

// metricPartialCubesRolledUpTotal counts partial cubes merged into a final byte-totals cube.
// With N scan workers every parallel byte-totals query adds N.
var (
	metricPartialCubesRolledUpTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "partial_cubes_rolled_up_total",
		},
		[]string{},
	)
)
