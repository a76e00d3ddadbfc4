// Package recordstest builds access-log fixtures for tests.
package recordstest

import (
	"fmt"
	"strings"
)

// Header is the first line of every access log.
const Header = "timestamp  device_id       ap_id           bytes  direction"

// Row formats one log row with every field at its fixed offset. direction is written verbatim,
// e.g. "upload", "download", "u" or "d".
func Row(timestamp int64, deviceID, accessPointID string, byteCount uint64, direction string) string {
	return fmt.Sprintf("%010d %-15s %-15s %06d %s", timestamp, deviceID, accessPointID, byteCount, direction)
}

// Log joins rows under the header, one per line, with a trailing newline.
func Log(rows ...string) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// AccessPointHeader is the first line of the access-point registry file.
const AccessPointHeader = "ap_id           building"

// AccessPointRow formats one registry row.
func AccessPointRow(accessPointID, building string) string {
	return fmt.Sprintf("%-15s %s", accessPointID, building)
}

// AccessPoints joins registry rows under the header.
func AccessPoints(rows ...string) string {
	var b strings.Builder
	b.WriteString(AccessPointHeader)
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}
