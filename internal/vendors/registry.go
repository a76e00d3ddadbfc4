package vendors

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"

	"wifi-analytics/internal/records"
)

// Registry lines look like
//
//	00A081     (base 16)		ALCATEL DATA NETWORKS
const (
	registryMarker      = "base 16"
	registryMarkerStart = 12
	registryVendorStart = 22
)

// ParseRegistry extracts the vendor entries of an IEEE MA-L listing. Only the "base 16" lines are
// used; everything else is skipped.
func ParseRegistry(r io.Reader) ([]Entry, error) {
	br := bufio.NewReader(r)
	var entries []Entry
	lineNo := 0
	for {
		line, err := br.ReadSlice('\n')
		if err == bufio.ErrBufferFull {
			// Only address lines run this long; drain them.
			for err == bufio.ErrBufferFull {
				_, err = br.ReadSlice('\n')
			}
			line = nil
		}
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read registry line %d: %w", lineNo+1, err)
		}
		lineNo++
		if entry, ok := parseRegistryLine(line); ok {
			entries = append(entries, entry)
		}
		if err == io.EOF {
			break
		}
	}
	return entries, nil
}

func parseRegistryLine(line []byte) (Entry, bool) {
	if len(line) < registryVendorStart {
		return Entry{}, false
	}
	if string(line[registryMarkerStart:registryMarkerStart+len(registryMarker)]) != registryMarker {
		return Entry{}, false
	}
	oui, ok := ParseOUI(line[:6])
	if !ok {
		return Entry{}, false
	}
	name := string(bytes.ToValidUTF8(bytes.TrimSpace(line[registryVendorStart:]), []byte("�")))
	return Entry{OUI: oui, Vendor: name}, true
}

// LoadRegistryTable builds a table from a full, unfiltered registry listing.
func LoadRegistryTable(r io.Reader) (*Table, error) {
	entries, err := ParseRegistry(r)
	if err != nil {
		return nil, err
	}
	return NewTable(entries), nil
}

// ObservedOUIs collects the vendor ids that appear in an access log.
func ObservedOUIs(r io.Reader) (map[OUI]struct{}, error) {
	seen := make(map[OUI]struct{})
	s := records.NewScanner(r)
	for s.Scan() {
		rec, err := s.Record()
		if err != nil {
			return nil, err
		}
		oui, ok := ParseOUI(rec.VendorID())
		if !ok {
			return nil, s.Wrap(fmt.Errorf("%w: %q", ErrUnknownVendor, rec.VendorID()))
		}
		seen[oui] = struct{}{}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return seen, nil
}

// FilterObserved keeps the entries whose OUI is in observed, sorted by OUI. The last entry of a
// repeated OUI wins, matching NewTable.
func FilterObserved(entries []Entry, observed map[OUI]struct{}) []Entry {
	latest := make(map[OUI]string)
	for _, e := range entries {
		if _, ok := observed[e.OUI]; ok {
			latest[e.OUI] = e.Vendor
		}
	}
	out := make([]Entry, 0, len(latest))
	for oui, name := range latest {
		out = append(out, Entry{OUI: oui, Vendor: name})
	}
	sortEntries(out)
	return out
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].OUI < entries[j].OUI })
}
