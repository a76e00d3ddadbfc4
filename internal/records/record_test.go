package records

import (
	"testing"

	"wifi-analytics/internal/models"
	"wifi-analytics/internal/records/recordstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_Fields(t *testing.T) {
	t.Parallel()

	line := []byte(recordstest.Row(1607173201, "AABBCC:11:22:33", "001122:AA:BB:CC", 500, "upload"))

	rec, err := View(line)
	require.NoError(t, err)

	ts, err := rec.Timestamp()
	require.NoError(t, err)
	assert.Equal(t, int64(1607173201), ts)

	n, err := rec.ByteCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(500), n)

	assert.Equal(t, "AABBCC:11:22:33", string(rec.DeviceID()))
	assert.Equal(t, "AABBCC", string(rec.VendorID()))
	assert.Equal(t, "001122:AA:BB:CC", string(rec.AccessPointID()))
	assert.True(t, rec.IsUpload())
	assert.Equal(t, models.DirectionReceived, rec.Direction())
}

func TestView_DirectionTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token    string
		upload   bool
		expected models.Direction
	}{
		{token: "upload", upload: true, expected: models.DirectionReceived},
		{token: "u", upload: true, expected: models.DirectionReceived},
		{token: "download", upload: false, expected: models.DirectionSent},
		{token: "d", upload: false, expected: models.DirectionSent},
		{token: "U", upload: false, expected: models.DirectionSent},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()
			rec, err := View([]byte(recordstest.Row(1, "AABBCC:11:22:33", "001122:AA:BB:CC", 1, tt.token)))
			require.NoError(t, err)
			assert.Equal(t, tt.upload, rec.IsUpload())
			assert.Equal(t, tt.expected, rec.Direction())
		})
	}
}

func TestView_ShortLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{name: "empty", line: ""},
		{name: "missing direction", line: recordstest.Row(1, "AABBCC:11:22:33", "001122:AA:BB:CC", 1, "")[:MinLineLen-1]},
		{name: "carriage return does not count", line: recordstest.Row(1, "AABBCC:11:22:33", "001122:AA:BB:CC", 1, "")[:MinLineLen-1] + "\r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := View([]byte(tt.line))
			assert.ErrorIs(t, err, ErrShortLine)
		})
	}
}

func TestView_StripsCarriageReturn(t *testing.T) {
	t.Parallel()

	rec, err := View([]byte(recordstest.Row(1, "AABBCC:11:22:33", "001122:AA:BB:CC", 1, "u") + "\r"))
	require.NoError(t, err)
	assert.Equal(t, MinLineLen, len(rec.Bytes()))
}

func TestRecord_BadNumbers(t *testing.T) {
	t.Parallel()

	line := []byte(recordstest.Row(1607173201, "AABBCC:11:22:33", "001122:AA:BB:CC", 500, "upload"))
	copy(line[3:], "x")
	copy(line[byteCountStart:], " 12")

	rec, err := View(line)
	require.NoError(t, err)

	_, err = rec.Timestamp()
	assert.ErrorIs(t, err, ErrBadNumber)
	assert.Contains(t, err.Error(), "timestamp")

	_, err = rec.ByteCount()
	assert.ErrorIs(t, err, ErrBadNumber)
	assert.Contains(t, err.Error(), "byte count")
}

func TestParseDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected uint64
		wantErr  bool
	}{
		{input: "000500", expected: 500},
		{input: "1607173201", expected: 1607173201},
		{input: "0", expected: 0},
		{input: "", wantErr: true},
		{input: "-12", wantErr: true},
		{input: "+12", wantErr: true},
		{input: "12a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			v, err := parseDecimal([]byte(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}
