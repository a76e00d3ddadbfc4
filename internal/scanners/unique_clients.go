package scanners

import (
	"bytes"
	"context"
	"io"

	"wifi-analytics/internal/records"
)

// UniqueClients lists the devices whose first upload through accessPointID happened within
// ClientWindowSeconds after since, in order of first appearance.
//
// A device is settled by its first upload row to the access point: if that row falls outside the
// window, later rows of the same device are ignored even when they fall inside it.
func UniqueClients(ctx context.Context, r io.Reader, accessPointID string, since int64) ([]string, error) {
	target := []byte(accessPointID)
	seen := make(map[string]struct{})
	clients := []string{}

	s := records.NewScanner(r)
	for s.Scan() {
		if err := checkCtx(ctx, s); err != nil {
			return nil, err
		}
		rec, err := s.Record()
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(rec.AccessPointID(), target) || !rec.IsUpload() {
			continue
		}
		deviceID := rec.DeviceID()
		if _, ok := seen[string(deviceID)]; ok {
			continue
		}
		device := string(deviceID)
		seen[device] = struct{}{}

		ts, err := rec.Timestamp()
		if err != nil {
			return nil, s.Wrap(err)
		}
		if delta := ts - since; delta >= 0 && delta <= ClientWindowSeconds {
			clients = append(clients, device)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return clients, nil
}
