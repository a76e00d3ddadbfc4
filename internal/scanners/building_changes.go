package scanners

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"wifi-analytics/internal/accesspoints"
	"wifi-analytics/internal/models"
	"wifi-analytics/internal/records"
)

// BuildingChanges follows deviceID through the log and reports every row where the building of
// its access point differs from the building of its previous row. The first row of the device
// always counts as a change.
func BuildingChanges(ctx context.Context, r io.Reader, buildings BuildingLookup, deviceID string) ([]models.BuildingChange, error) {
	target := []byte(deviceID)
	previous := ""
	changes := []models.BuildingChange{}

	s := records.NewScanner(r)
	for s.Scan() {
		if err := checkCtx(ctx, s); err != nil {
			return nil, err
		}
		rec, err := s.Record()
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(rec.DeviceID(), target) {
			continue
		}
		building, ok := buildings.Building(rec.AccessPointID())
		if !ok {
			return nil, s.Wrap(fmt.Errorf("%w: %q", accesspoints.ErrUnknownAccessPoint, rec.AccessPointID()))
		}
		if building == previous {
			continue
		}
		ts, err := rec.Timestamp()
		if err != nil {
			return nil, s.Wrap(err)
		}
		changes = append(changes, models.BuildingChange{Timestamp: ts, Building: building})
		previous = building
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return changes, nil
}
