package records

import (
	"errors"
	"fmt"

	"wifi-analytics/internal/models"
)

// Byte offsets of the fields of one access-log row. Ranges are half open.
const (
	timestampStart     = 0
	timestampEnd       = 10
	deviceIDStart      = 11
	deviceIDEnd        = 26
	vendorIDEnd        = deviceIDStart + VendorIDLen
	accessPointIDStart = 27
	accessPointIDEnd   = 42
	byteCountStart     = 43
	byteCountEnd       = 49
	directionOffset    = 50

	// MinLineLen is the shortest row that holds every field.
	MinLineLen = directionOffset + 1

	// VendorIDLen is the number of hex characters identifying a hardware vendor.
	VendorIDLen = 6
	// IDLen is the width of a device or access-point id, e.g. "40A6E8:6C:5B:05".
	IDLen = deviceIDEnd - deviceIDStart

	uploadToken = 'u'
)

var (
	ErrShortLine = errors.New("line too short")
	ErrBadNumber = errors.New("invalid decimal field")
)

// Record is a view over one raw log row. Accessors return sub-slices of the row, so they are only
// valid while the underlying buffer is.
type Record struct {
	line []byte
}

// View checks that line is long enough to hold every field and wraps it. A trailing carriage
// return is ignored.
func View(line []byte) (Record, error) {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	if len(line) < MinLineLen {
		return Record{}, fmt.Errorf("%w: got %d bytes, need %d", ErrShortLine, len(line), MinLineLen)
	}
	return Record{line: line}, nil
}

func (r Record) Timestamp() (int64, error) {
	v, err := parseDecimal(r.line[timestampStart:timestampEnd])
	if err != nil {
		return 0, fmt.Errorf("timestamp: %w", err)
	}
	return int64(v), nil
}

func (r Record) DeviceID() []byte {
	return r.line[deviceIDStart:deviceIDEnd]
}

// VendorID is the first six characters of the device id.
func (r Record) VendorID() []byte {
	return r.line[deviceIDStart:vendorIDEnd]
}

func (r Record) AccessPointID() []byte {
	return r.line[accessPointIDStart:accessPointIDEnd]
}

func (r Record) ByteCount() (uint64, error) {
	v, err := parseDecimal(r.line[byteCountStart:byteCountEnd])
	if err != nil {
		return 0, fmt.Errorf("byte count: %w", err)
	}
	return v, nil
}

// IsUpload reports whether the row is device to network traffic. Both the "u" and the "upload"
// tokens start with the same byte, so only that byte is inspected.
func (r Record) IsUpload() bool {
	return r.line[directionOffset] == uploadToken
}

func (r Record) Direction() models.Direction {
	return models.DirectionFromUpload(r.IsUpload())
}

// Bytes returns the whole row.
func (r Record) Bytes() []byte {
	return r.line
}

// parseDecimal accepts ASCII digits only: no sign, no padding, no empty field.
func parseDecimal(b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrBadNumber)
	}
	var v uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrBadNumber, b)
		}
		v = v*10 + uint64(c-'0')
	}
	return v, nil
}
