package vendors

import (
	"strings"
	"testing"

	"wifi-analytics/internal/records"
	"wifi-analytics/internal/records/recordstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registryFixture = "OUI/MA-L                                                    Organization                                 \r\n" +
	"company_id                                                  Organization                                 \r\n" +
	"                                                            Address                                      \r\n" +
	"\r\n" +
	"00-22-72   (hex)\t\tAmerican Micro-Fuel Device Corp.\r\n" +
	"002272     (base 16)\t\tAmerican Micro-Fuel Device Corp.\r\n" +
	"\t\t\t\t2181 Buchanan Loop\r\n" +
	"\t\t\t\tFerndale  WA  98248\r\n" +
	"\t\t\t\tUS\r\n" +
	"\r\n" +
	"00-D0-EF   (hex)\t\tIGT\r\n" +
	"00D0EF     (base 16)\t\tIGT\r\n" +
	"\t\t\t\t9295 PROTOTYPE DRIVE\r\n" +
	"\r\n" +
	"4C-3C-16   (hex)\t\tSamsung Electronics Co.,Ltd\n" +
	"4C3C16     (base 16)\t\tSamsung Electronics Co.,Ltd"

func TestParseRegistry(t *testing.T) {
	t.Parallel()

	entries, err := ParseRegistry(strings.NewReader(registryFixture))
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{OUI: 0x002272, Vendor: "American Micro-Fuel Device Corp."},
		{OUI: 0x00D0EF, Vendor: "IGT"},
		{OUI: 0x4C3C16, Vendor: "Samsung Electronics Co.,Ltd"},
	}, entries)
}

func TestParseRegistry_LongLinesSkipped(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("x", 10000) + "\n" + "00D0EF     (base 16)\t\tIGT\n"

	entries, err := ParseRegistry(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Entry{{OUI: 0x00D0EF, Vendor: "IGT"}}, entries)
}

func TestLoadRegistryTable(t *testing.T) {
	t.Parallel()

	table, err := LoadRegistryTable(strings.NewReader(registryFixture))
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	name, ok := table.Lookup([]byte("00D0EF"))
	assert.True(t, ok)
	assert.Equal(t, "IGT", name)
}

func TestObservedOUIs(t *testing.T) {
	t.Parallel()

	log := recordstest.Log(
		recordstest.Row(1, "4C3C16:46:65:62", "40A6E8:6C:5B:05", 1, "upload"),
		recordstest.Row(2, "4C3C16:00:00:01", "40A6E8:6C:5B:05", 1, "download"),
		recordstest.Row(3, "00D0EF:46:65:62", "40A6E8:6C:5B:05", 1, "upload"),
	)

	observed, err := ObservedOUIs(strings.NewReader(log))
	require.NoError(t, err)
	assert.Equal(t, map[OUI]struct{}{0x4C3C16: {}, 0x00D0EF: {}}, observed)
}

func TestObservedOUIs_Errors(t *testing.T) {
	t.Parallel()

	_, err := ObservedOUIs(strings.NewReader(recordstest.Log("short")))
	assert.ErrorIs(t, err, records.ErrShortLine)

	_, err = ObservedOUIs(strings.NewReader(recordstest.Log(
		recordstest.Row(1, "ZZZZZZ:46:65:62", "40A6E8:6C:5B:05", 1, "upload"),
	)))
	assert.ErrorIs(t, err, ErrUnknownVendor)
}

func TestFilterObserved(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{OUI: 0x4C3C16, Vendor: "Samsung"},
		{OUI: 0x002272, Vendor: "American Micro-Fuel"},
		{OUI: 0x00D0EF, Vendor: "IGT"},
		{OUI: 0x00D0EF, Vendor: "IGT Corp"},
	}
	observed := map[OUI]struct{}{0x4C3C16: {}, 0x00D0EF: {}, 0xFFFFFF: {}}

	assert.Equal(t, []Entry{
		{OUI: 0x00D0EF, Vendor: "IGT Corp"},
		{OUI: 0x4C3C16, Vendor: "Samsung"},
	}, FilterObserved(entries, observed))
}
