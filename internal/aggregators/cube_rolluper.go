package aggregators

import (
	"fmt"

	"wifi-analytics/internal/models"
)

//go:generate mockgen -source=cube_rolluper.go -destination=./mocks/cube_rolluper_mock.go -package=mocks
type CubeRolluper interface {
	// Rollup mutates agg by deep-adding every leaf of partial. The merge is commutative and
	// associative, so partials may be rolled up in any order.
	Rollup(agg models.ByteCube, partial models.ByteCube) error
}

type cubeRolluper struct{}

func NewCubeRolluper() CubeRolluper {
	return &cubeRolluper{}
}

func (r *cubeRolluper) Rollup(agg models.ByteCube, partial models.ByteCube) error {
	if agg == nil {
		return fmt.Errorf("rollup into nil cube")
	}
	for date, byAccessPoint := range partial {
		aggByAccessPoint, ok := agg[date]
		if !ok {
			aggByAccessPoint = make(map[string]map[models.Direction]uint64, len(byAccessPoint))
			agg[date] = aggByAccessPoint
		}
		for accessPointID, byDirection := range byAccessPoint {
			aggByDirection, ok := aggByAccessPoint[accessPointID]
			if !ok {
				aggByDirection = make(map[models.Direction]uint64, len(byDirection))
				aggByAccessPoint[accessPointID] = aggByDirection
			}
			for direction, n := range byDirection {
				sum := aggByDirection[direction] + n
				if sum < n {
					return fmt.Errorf("%w: %s/%s/%s", models.ErrCounterOverflow, date, accessPointID, direction)
				}
				aggByDirection[direction] = sum
			}
		}
	}
	metricPartialCubesRolledUpTotal.WithLabelValues().Inc()
	return nil
}
