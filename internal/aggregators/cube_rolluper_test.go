package aggregators

import (
	"math"
	"testing"

	"wifi-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeRolluper_Rollup_MergesOverlappingKeys(t *testing.T) {
	t.Parallel()

	rolluper := NewCubeRolluper()

	agg := models.ByteCube{
		"2020-12-05": {
			"40A6E8:6C:5B:05": {models.DirectionReceived: 100, models.DirectionSent: 10},
		},
	}
	partial := models.ByteCube{
		"2020-12-05": {
			"40A6E8:6C:5B:05": {models.DirectionReceived: 50, models.DirectionSent: 5},
		},
	}

	err := rolluper.Rollup(agg, partial)
	require.NoError(t, err)

	// Verify overlapping leaves are added
	assert.Equal(t, uint64(150), agg.Total("2020-12-05", "40A6E8:6C:5B:05", models.DirectionReceived), "received should be 100+50=150")
	assert.Equal(t, uint64(15), agg.Total("2020-12-05", "40A6E8:6C:5B:05", models.DirectionSent), "sent should be 10+5=15")
}

func TestCubeRolluper_Rollup_AddsNewKeys(t *testing.T) {
	t.Parallel()

	rolluper := NewCubeRolluper()

	agg := models.ByteCube{
		"2020-12-05": {
			"40A6E8:6C:5B:05": {models.DirectionReceived: 100},
		},
	}
	partial := models.ByteCube{
		"2020-12-05": {
			"40A6E8:6C:5B:05": {models.DirectionSent: 7},
			"001122:AA:BB:CC": {models.DirectionReceived: 500},
		},
		"2020-12-06": {
			"001122:AA:BB:CC": {models.DirectionSent: 1},
		},
	}

	err := rolluper.Rollup(agg, partial)
	require.NoError(t, err)

	assert.Equal(t, models.ByteCube{
		"2020-12-05": {
			"40A6E8:6C:5B:05": {models.DirectionReceived: 100, models.DirectionSent: 7},
			"001122:AA:BB:CC": {models.DirectionReceived: 500},
		},
		"2020-12-06": {
			"001122:AA:BB:CC": {models.DirectionSent: 1},
		},
	}, agg)

	// Partial is left untouched
	assert.Equal(t, uint64(500), partial.Total("2020-12-05", "001122:AA:BB:CC", models.DirectionReceived))
}

func TestCubeRolluper_Rollup_OrderIndependent(t *testing.T) {
	t.Parallel()

	partials := []models.ByteCube{
		{"2020-12-05": {"A": {models.DirectionSent: 1}}},
		{"2020-12-05": {"A": {models.DirectionSent: 2}, "B": {models.DirectionReceived: 3}}},
		{"2020-12-06": {"B": {models.DirectionReceived: 4}}},
	}

	forward := models.NewByteCube()
	backward := models.NewByteCube()
	rolluper := NewCubeRolluper()
	for i := range partials {
		require.NoError(t, rolluper.Rollup(forward, partials[i]))
		require.NoError(t, rolluper.Rollup(backward, partials[len(partials)-1-i]))
	}

	assert.Equal(t, forward, backward)
}

func TestCubeRolluper_Rollup_EmptyPartial(t *testing.T) {
	t.Parallel()

	agg := models.ByteCube{"2020-12-05": {"A": {models.DirectionSent: 1}}}
	require.NoError(t, NewCubeRolluper().Rollup(agg, models.NewByteCube()))
	require.NoError(t, NewCubeRolluper().Rollup(agg, nil))
	assert.Equal(t, models.ByteCube{"2020-12-05": {"A": {models.DirectionSent: 1}}}, agg)
}

func TestCubeRolluper_Rollup_Overflow(t *testing.T) {
	t.Parallel()

	agg := models.ByteCube{"2020-12-05": {"A": {models.DirectionSent: math.MaxUint64}}}
	partial := models.ByteCube{"2020-12-05": {"A": {models.DirectionSent: 1}}}

	err := NewCubeRolluper().Rollup(agg, partial)
	assert.ErrorIs(t, err, models.ErrCounterOverflow)
}

func TestCubeRolluper_Rollup_NilAggregate(t *testing.T) {
	t.Parallel()

	err := NewCubeRolluper().Rollup(nil, models.NewByteCube())
	assert.Error(t, err)
}
