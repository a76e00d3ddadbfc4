package accesspoints

import (
	"strings"
	"testing"

	"wifi-analytics/internal/records/recordstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	input := recordstest.AccessPoints(
		recordstest.AccessPointRow("40A6E8:6C:5B:05", "11A"),
		recordstest.AccessPointRow("001122:AA:BB:CC", "07B extra columns"),
		recordstest.AccessPointRow("40A6E8:6C:5B:05", "12C"),
	)

	registry, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, registry.Len())

	building, ok := registry.Building([]byte("40A6E8:6C:5B:05"))
	assert.True(t, ok)
	assert.Equal(t, "12C", building, "last row of a repeated id wins")

	building, err = registry.Resolve([]byte("001122:AA:BB:CC"))
	require.NoError(t, err)
	assert.Equal(t, "07B", building)
}

func TestLoad_HeaderOnly(t *testing.T) {
	t.Parallel()

	registry, err := Load(strings.NewReader(recordstest.AccessPointHeader + "\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, registry.Len())
}

func TestLoad_CRLF(t *testing.T) {
	t.Parallel()

	input := recordstest.AccessPointHeader + "\r\n" + recordstest.AccessPointRow("40A6E8:6C:5B:05", "11A") + "\r\n"

	registry, err := Load(strings.NewReader(input))
	require.NoError(t, err)

	building, ok := registry.Building([]byte("40A6E8:6C:5B:05"))
	assert.True(t, ok)
	assert.Equal(t, "11A", building)
}

func TestLoad_ShortLine(t *testing.T) {
	t.Parallel()

	input := recordstest.AccessPoints(
		recordstest.AccessPointRow("40A6E8:6C:5B:05", "11A"),
		recordstest.AccessPointRow("001122:AA:BB:CC", "7"),
	)

	_, err := Load(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShortLine)
	assert.Contains(t, err.Error(), "line 3")
}

func TestRegistry_Resolve_Unknown(t *testing.T) {
	t.Parallel()

	registry, err := Load(strings.NewReader(recordstest.AccessPointHeader))
	require.NoError(t, err)

	_, err = registry.Resolve([]byte("FFFFFF:00:00:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAccessPoint)
	assert.Contains(t, err.Error(), "FFFFFF:00:00:00")
}
