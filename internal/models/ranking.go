package models

import "time"

// VendorCount is one entry of the top-vendor ranking: a vendor name and the number of distinct
// devices attributed to it.
type VendorCount struct {
	Vendor string `json:"vendor"`
	Count  uint32 `json:"count"`
}

// BuildingChangeLayout renders a building transition, e.g. "2020-Dec-05 13:00:01".
const BuildingChangeLayout = "2006-Jan-02 15:04:05"

// BuildingChange records the moment a device was first seen in a building different from the one
// it was previously seen in.
type BuildingChange struct {
	Timestamp int64  `json:"timestamp"`
	Building  string `json:"building"`
}

func (c BuildingChange) Time() time.Time {
	return time.Unix(c.Timestamp, 0).UTC()
}

func (c BuildingChange) Format() string {
	return c.Time().Format(BuildingChangeLayout)
}

// FormatBuildingChanges renders changes in order, the form the reports expose.
func FormatBuildingChanges(changes []BuildingChange) []string {
	out := make([]string, len(changes))
	for i, c := range changes {
		out[i] = c.Format()
	}
	return out
}
