package vendors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOUI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected OUI
		ok       bool
	}{
		{input: "00A081", expected: 0x00A081, ok: true},
		{input: "4C3C16", expected: 0x4C3C16, ok: true},
		{input: "4c3c16", ok: false},
		{input: "FFFFFF", expected: 0xFFFFFF, ok: true},
		{input: "000000", expected: 0, ok: true},
		{input: "00A08", ok: false},
		{input: "00A0811", ok: false},
		{input: "00G081", ok: false},
		{input: "00:A0:", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			oui, ok := ParseOUI([]byte(tt.input))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, oui)
		})
	}
}

func TestOUI_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00A081", OUI(0x00A081).String())
	assert.Equal(t, "4C3C16", OUI(0x4C3C16).String())
}

func TestTable_Lookup(t *testing.T) {
	t.Parallel()

	table := NewTable([]Entry{
		{OUI: 0xAABBCC, Vendor: "Acme"},
		{OUI: 0x001122, Vendor: "Old Name"},
		{OUI: 0x001122, Vendor: "New Name"},
	})

	assert.Equal(t, 2, table.Len())

	name, ok := table.Lookup([]byte("AABBCC"))
	assert.True(t, ok)
	assert.Equal(t, "Acme", name)

	_, ok = table.Lookup([]byte("aabbcc"))
	assert.False(t, ok)

	name, ok = table.Lookup([]byte("001122"))
	assert.True(t, ok)
	assert.Equal(t, "New Name", name)

	_, ok = table.Lookup([]byte("DDEEFF"))
	assert.False(t, ok)

	_, ok = table.Lookup([]byte("not-hex"))
	assert.False(t, ok)

	assert.Equal(t, []Entry{
		{OUI: 0x001122, Vendor: "New Name"},
		{OUI: 0xAABBCC, Vendor: "Acme"},
	}, table.Entries())
}

func TestTable_Resolve_UnknownCarriesID(t *testing.T) {
	t.Parallel()

	table := NewTable(nil)

	_, err := table.Resolve([]byte("DDEEFF"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownVendor)
	assert.Contains(t, err.Error(), "DDEEFF")
}

func TestNewSnapshotTable(t *testing.T) {
	t.Parallel()

	table := NewSnapshotTable()
	assert.Equal(t, len(snapshot), table.Len())

	name, err := table.Resolve([]byte("4C3C16"))
	require.NoError(t, err)
	assert.Equal(t, "Samsung Electronics Co.,Ltd", name)

	for i := 1; i < len(snapshot); i++ {
		assert.Less(t, snapshot[i-1].OUI, snapshot[i].OUI, "snapshot must be sorted and unique")
	}
}
