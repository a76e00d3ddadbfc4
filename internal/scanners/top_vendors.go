package scanners

import (
	"context"
	"fmt"
	"io"
	"sort"

	"wifi-analytics/internal/models"
	"wifi-analytics/internal/records"
	"wifi-analytics/internal/vendors"
)

// RankVendors counts distinct devices per vendor and returns every vendor, most devices first.
// Vendors with equal counts keep the order in which the file first mentioned them.
func RankVendors(ctx context.Context, r io.Reader, lookup VendorLookup) ([]models.VendorCount, error) {
	seen := make(map[string]struct{})
	index := make(map[string]int)
	var ranking []models.VendorCount

	s := records.NewScanner(r)
	for s.Scan() {
		if err := checkCtx(ctx, s); err != nil {
			return nil, err
		}
		rec, err := s.Record()
		if err != nil {
			return nil, err
		}
		deviceID := rec.DeviceID()
		if _, ok := seen[string(deviceID)]; ok {
			continue
		}
		seen[string(deviceID)] = struct{}{}

		vendor, ok := lookup.Lookup(rec.VendorID())
		if !ok {
			return nil, s.Wrap(fmt.Errorf("%w: %q", vendors.ErrUnknownVendor, rec.VendorID()))
		}
		i, ok := index[vendor]
		if !ok {
			i = len(ranking)
			index[vendor] = i
			ranking = append(ranking, models.VendorCount{Vendor: vendor})
		}
		ranking[i].Count++
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Count > ranking[j].Count })
	return ranking, nil
}

// TopVendors is RankVendors truncated to limit entries. A non-positive limit means
// DefaultTopVendors.
func TopVendors(ctx context.Context, r io.Reader, lookup VendorLookup, limit int) ([]models.VendorCount, error) {
	if limit <= 0 {
		limit = DefaultTopVendors
	}
	ranking, err := RankVendors(ctx, r, lookup)
	if err != nil {
		return nil, err
	}
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking, nil
}
