package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteCube_Add_Accumulates(t *testing.T) {
	t.Parallel()

	cube := NewByteCube()
	require.NoError(t, cube.Add("2020-12-05", []byte("001122:AA:BB:CC"), DirectionReceived, 500))
	require.NoError(t, cube.Add("2020-12-05", []byte("001122:AA:BB:CC"), DirectionReceived, 250))
	require.NoError(t, cube.Add("2020-12-05", []byte("001122:AA:BB:CC"), DirectionSent, 10))
	require.NoError(t, cube.Add("2020-12-06", []byte("40A6E8:6C:5B:05"), DirectionSent, 7))

	expected := ByteCube{
		"2020-12-05": {
			"001122:AA:BB:CC": {DirectionReceived: 750, DirectionSent: 10},
		},
		"2020-12-06": {
			"40A6E8:6C:5B:05": {DirectionSent: 7},
		},
	}
	assert.Equal(t, expected, cube)
	assert.Equal(t, uint64(750), cube.Total("2020-12-05", "001122:AA:BB:CC", DirectionReceived))
	assert.Equal(t, uint64(0), cube.Total("2020-12-07", "001122:AA:BB:CC", DirectionReceived))
}

func TestByteCube_Add_KeyDoesNotAliasBuffer(t *testing.T) {
	t.Parallel()

	cube := NewByteCube()
	buf := []byte("001122:AA:BB:CC")
	require.NoError(t, cube.Add("2020-12-05", buf, DirectionSent, 1))

	// Reusing the read buffer must not rewrite the stored key
	copy(buf, "FFFFFF:FF:FF:FF")
	assert.Equal(t, uint64(1), cube.Total("2020-12-05", "001122:AA:BB:CC", DirectionSent))
}

func TestByteCube_Add_Overflow(t *testing.T) {
	t.Parallel()

	cube := NewByteCube()
	require.NoError(t, cube.Add("2020-12-05", []byte("001122:AA:BB:CC"), DirectionSent, math.MaxUint64))

	err := cube.Add("2020-12-05", []byte("001122:AA:BB:CC"), DirectionSent, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCounterOverflow)
	assert.Contains(t, err.Error(), "001122:AA:BB:CC")
	assert.Equal(t, uint64(math.MaxUint64), cube.Total("2020-12-05", "001122:AA:BB:CC", DirectionSent))
}

func TestByteCube_DatesAndRows_Sorted(t *testing.T) {
	t.Parallel()

	cube := ByteCube{
		"2020-12-06": {
			"BBBBBB:00:00:00": {DirectionSent: 3},
		},
		"2020-12-05": {
			"BBBBBB:00:00:00": {DirectionSent: 2, DirectionReceived: 1},
			"AAAAAA:00:00:00": {DirectionSent: 4},
		},
	}

	assert.Equal(t, []string{"2020-12-05", "2020-12-06"}, cube.Dates())
	assert.Equal(t, []ByteCubeRow{
		{Date: "2020-12-05", AccessPointID: "AAAAAA:00:00:00", Direction: DirectionSent, Bytes: 4},
		{Date: "2020-12-05", AccessPointID: "BBBBBB:00:00:00", Direction: DirectionReceived, Bytes: 1},
		{Date: "2020-12-05", AccessPointID: "BBBBBB:00:00:00", Direction: DirectionSent, Bytes: 2},
		{Date: "2020-12-06", AccessPointID: "BBBBBB:00:00:00", Direction: DirectionSent, Bytes: 3},
	}, cube.Rows())
}

func TestBuildingChange_Format(t *testing.T) {
	t.Parallel()

	ts := time.Date(2020, 12, 5, 13, 0, 1, 0, time.UTC).Unix()
	change := BuildingChange{Timestamp: ts, Building: "11A"}

	assert.Equal(t, "2020-Dec-05 13:00:01", change.Format())
	assert.Equal(t, []string{"2020-Dec-05 13:00:01"}, FormatBuildingChanges([]BuildingChange{change}))
	assert.Empty(t, FormatBuildingChanges(nil))
}
