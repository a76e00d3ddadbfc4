// Package scanners implements the single-pass queries over an access log. Every scanner reads
// the log once, front to back, and either returns a complete result or aborts on the first
// malformed row, unknown vendor or unknown access point.
package scanners

import (
	"context"

	"wifi-analytics/internal/records"
)

const (
	// DefaultTopVendors is the length of the vendor ranking.
	DefaultTopVendors = 10

	// ClientWindowSeconds is how far after the reference timestamp a device may first upload and
	// still count as a client. Both ends are inclusive.
	ClientWindowSeconds int64 = 3 * 60 * 60

	ctxCheckInterval = 4096
)

// VendorLookup resolves the six hex characters of a vendor id to a vendor name.
type VendorLookup interface {
	Lookup(vendorID []byte) (string, bool)
}

// BuildingLookup resolves an access-point id to a building id.
type BuildingLookup interface {
	Building(accessPointID []byte) (string, bool)
}

// checkCtx polls ctx every ctxCheckInterval rows.
func checkCtx(ctx context.Context, s *records.Scanner) error {
	if s.LineNo()%ctxCheckInterval != 0 {
		return nil
	}
	return ctx.Err()
}
